package ledger

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidAmount     = crerr.New("invalid amount")
	ErrInsufficientFunds = crerr.New("insufficient funds")
)

// Account is a single-owner balance held in minor currency units.
// It is not safe for concurrent use.
type Account struct {
	owner   string
	balance int64
}

func NewAccount(owner string, initial int64) (*Account, error) {
	if initial < 0 {
		return nil, crerr.Wrapf(ErrInvalidAmount, "initial balance %d cannot be negative", initial)
	}

	return &Account{owner: owner, balance: initial}, nil
}

func (a *Account) Owner() string {
	return a.owner
}

func (a *Account) Balance() int64 {
	return a.balance
}

func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return crerr.Wrapf(ErrInvalidAmount, "deposit %d", amount)
	}

	a.balance += amount
	return nil
}

func (a *Account) Withdraw(amount int64) error {
	if err := a.checkDebit(amount); err != nil {
		return crerr.Wrap(err, "withdraw")
	}

	a.balance -= amount
	return nil
}

// Transfer moves amount to target. Nothing moves unless both legs are valid.
func (a *Account) Transfer(target *Account, amount int64) error {
	if target == nil {
		return crerr.New("transfer target is required")
	}
	if target == a {
		return crerr.New("cannot transfer to the same account")
	}
	if err := a.checkDebit(amount); err != nil {
		return crerr.Wrapf(err, "transfer to %s", target.owner)
	}

	a.balance -= amount
	target.balance += amount
	return nil
}

// TransferAfter waits for delay and then performs Transfer. A cancelled
// context aborts the wait and leaves both balances untouched.
func (a *Account) TransferAfter(ctx context.Context, target *Account, amount int64, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return crerr.Wrap(ctx.Err(), "transfer cancelled")
	case <-timer.C:
	}

	return a.Transfer(target, amount)
}

func (a *Account) checkDebit(amount int64) error {
	if amount <= 0 {
		return crerr.Wrapf(ErrInvalidAmount, "amount %d", amount)
	}
	if a.balance < amount {
		return crerr.Wrapf(ErrInsufficientFunds, "balance %d is below %d", a.balance, amount)
	}
	return nil
}
