package main

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/ballpark/internal/config"
	"github.com/riskibarqy/ballpark/internal/domain/account"
	"github.com/riskibarqy/ballpark/internal/domain/game"
	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/domain/ledger"
	"github.com/riskibarqy/ballpark/internal/domain/library"
	"github.com/riskibarqy/ballpark/internal/domain/player"
	"github.com/riskibarqy/ballpark/internal/domain/playerstats"
	"github.com/riskibarqy/ballpark/internal/domain/team"
	"github.com/riskibarqy/ballpark/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ballpark/internal/platform/logging"
)

func runBaseball(ctx context.Context, _ config.Config, logger *logging.Logger) error {
	store := memory.NewStore(nil)

	bearsID, err := store.Teams.Create(ctx, team.Fields{Name: "Doosan Bears", City: "Seoul", Founded: 1982})
	if err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	twinsID, err := store.Teams.Create(ctx, team.Fields{Name: "LG Twins", City: "Seoul", Founded: 1982})
	if err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	kimID, err := store.Players.Create(ctx, player.Fields{
		Name:     "Kim",
		Number:   50,
		Position: player.PositionOutfielder,
		TeamID:   bearsID,
	})
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	kim, _, err := store.Players.GetByID(ctx, kimID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	roster, err := store.Players.ListByTeam(ctx, bearsID)
	if err != nil {
		return fmt.Errorf("list players by team: %w", err)
	}
	logger.InfoContext(ctx, "player signed",
		"player_id", kim.ID,
		"team_id", kim.TeamID,
		"roster_size", len(roster),
	)

	gameID, err := store.Games.Create(ctx, game.Fields{
		Date:       time.Date(2024, time.April, 2, 18, 30, 0, 0, time.UTC),
		HomeTeamID: bearsID,
		AwayTeamID: twinsID,
		Stadium:    "Jamsil Baseball Stadium",
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	for _, hits := range []int{2, 4} {
		if _, err := store.Records.Create(ctx, gamerecord.Fields{PlayerID: kimID, GameID: gameID, Hits: hits, Runs: 1}); err != nil {
			return fmt.Errorf("create game record: %w", err)
		}
	}

	stats, exists, err := playerstats.NewCalculator(store.Players, store.Records).ComputeStats(ctx, kimID)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}
	if !exists {
		return fmt.Errorf("player %s vanished", kimID)
	}
	logger.InfoContext(ctx, "player stats",
		"player", kim.Name,
		"games", stats.TotalGames,
		"hits", stats.TotalHits,
		"runs", stats.TotalRuns,
		"batting_average", stats.BattingAverage,
	)
	logger.InfoContext(ctx, "store size", "tables", store.Size())
	return nil
}

func runLedger(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	alice, err := ledger.NewAccount("Alice", 1000)
	if err != nil {
		return err
	}
	bob, err := ledger.NewAccount("Bob", 500)
	if err != nil {
		return err
	}

	if err := alice.Deposit(500); err != nil {
		return err
	}
	if err := alice.Withdraw(500); err != nil {
		return err
	}
	if err := alice.Withdraw(5000); err != nil {
		logger.InfoContext(ctx, "withdraw rejected", "owner", alice.Owner(), "error", err)
	}
	if err := alice.Transfer(bob, 300); err != nil {
		return err
	}
	if err := alice.TransferAfter(ctx, bob, 100, cfg.LedgerTransferDelay); err != nil {
		return err
	}

	logger.InfoContext(ctx, "balances",
		alice.Owner(), alice.Balance(),
		bob.Owner(), bob.Balance(),
	)
	return nil
}

func runLibrary(ctx context.Context, _ config.Config, logger *logging.Logger) error {
	lib := library.New(logger)

	paper, err := library.NewBook("JavaScript: The Definitive Guide", "David Flanagan", "978-1491950296", library.KindPhysical)
	if err != nil {
		return err
	}
	ebook, err := library.NewBook("Learning React", "Dan Abramov", "978-1491954638", library.KindElectronic)
	if err != nil {
		return err
	}
	for _, book := range []*library.Book{paper, ebook} {
		if err := lib.AddBook(ctx, book); err != nil {
			return err
		}
	}

	lib.CheckOut(ctx, paper.ISBN())
	lib.CheckOut(ctx, ebook.ISBN())
	lib.Download(ctx, ebook.ISBN())
	lib.Return(ctx, paper.ISBN())

	if _, ok := lib.SearchBook("123-4567890"); !ok {
		logger.InfoContext(ctx, "book not found", "isbn", "123-4567890")
	}
	lib.RemoveBook(ctx, paper.ISBN())
	return nil
}

func runDirectory(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	dir := account.NewDirectory()
	dir.Add(account.NewUser("alice", "password123", "user"))
	dir.Add(account.NewUser("Bob", "pass456", "admin"))
	logger.InfoContext(ctx, "users", "names", dir.Names())

	removed := dir.Remove("Alice")
	logger.InfoContext(ctx, "users after removal", "removed", removed, "names", dir.Names())

	if bob, ok := dir.Find("Bob"); ok {
		changed := bob.ChangePassword("short", cfg.UserMinPasswordLength)
		logger.InfoContext(ctx, bob.Greeting(), "role", bob.Role(), "password_changed", changed)
	}
	return nil
}
