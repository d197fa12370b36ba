package library

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
)

type Kind string

const (
	KindPhysical   Kind = "physical"
	KindElectronic Kind = "electronic"
)

// Book is one catalogue entry. State changes go through Library.
type Book struct {
	title      string
	author     string
	isbn       string
	kind       Kind
	checkedOut bool
	downloaded bool
}

func NewBook(title, author, isbn string, kind Kind) (*Book, error) {
	title = strings.TrimSpace(title)
	isbn = strings.TrimSpace(isbn)
	if title == "" {
		return nil, crerr.New("book title is required")
	}
	if isbn == "" {
		return nil, crerr.Newf("book %q: isbn is required", title)
	}
	if policyFor(kind) == nil {
		return nil, crerr.Newf("book %q: unsupported kind %q", title, kind)
	}

	return &Book{
		title:  title,
		author: strings.TrimSpace(author),
		isbn:   isbn,
		kind:   kind,
	}, nil
}

func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) ISBN() string   { return b.isbn }
func (b *Book) Kind() Kind     { return b.kind }

// Available reports whether the book can be lent right now. Electronic books
// are always available.
func (b *Book) Available() bool {
	return !b.checkedOut
}

func (b *Book) Downloaded() bool {
	return b.downloaded
}

type checkoutPolicy interface {
	checkOut(b *Book) Outcome
	giveBack(b *Book) Outcome
}

type physicalPolicy struct{}

func (physicalPolicy) checkOut(b *Book) Outcome {
	if b.checkedOut {
		return AlreadyCheckedOut
	}
	b.checkedOut = true
	return CheckedOut
}

func (physicalPolicy) giveBack(b *Book) Outcome {
	if !b.checkedOut {
		return NotCheckedOut
	}
	b.checkedOut = false
	return Returned
}

// electronicPolicy lends a licence rather than a copy, so the checked-out
// flag never changes.
type electronicPolicy struct{}

func (electronicPolicy) checkOut(b *Book) Outcome {
	if b.checkedOut {
		return AlreadyCheckedOut
	}
	return CheckedOut
}

func (electronicPolicy) giveBack(b *Book) Outcome {
	if !b.checkedOut {
		return NotCheckedOut
	}
	return Returned
}

func policyFor(kind Kind) checkoutPolicy {
	switch kind {
	case KindPhysical:
		return physicalPolicy{}
	case KindElectronic:
		return electronicPolicy{}
	default:
		return nil
	}
}
