package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/ballpark/internal/config"
	"github.com/riskibarqy/ballpark/internal/domain/playerstats"
	"github.com/riskibarqy/ballpark/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ballpark/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/ballpark/internal/platform/id"
	"github.com/riskibarqy/ballpark/internal/platform/logging"
	"github.com/riskibarqy/ballpark/internal/usecase"
)

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store := memory.NewStore(idgen.NewUUIDGenerator())
	if cfg.SeedDemoData {
		seeded, err := memory.Seed(ctx, store)
		if err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		logger.InfoContext(ctx, "demo data seeded",
			"teams", len(seeded.TeamIDs),
			"players", len(seeded.PlayerIDs),
			"games", len(seeded.GameIDs),
		)
	}

	teamSvc := usecase.NewTeamService(store.Teams, store.Players, store.Games, logger)
	playerSvc := usecase.NewPlayerService(store.Players, store.Records, logger)
	gameSvc := usecase.NewGameService(store.Games, store.Records, logger)
	statsSvc := usecase.NewPlayerStatsService(
		store.Teams,
		store.Players,
		playerstats.NewCalculator(store.Players, store.Records),
	)

	handler := httpapi.NewHandler(teamSvc, playerSvc, gameSvc, statsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
