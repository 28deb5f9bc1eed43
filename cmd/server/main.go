package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	"github.com/xinyujieHong/CSEN174-Project/internal/cache"
	"github.com/xinyujieHong/CSEN174-Project/internal/config"
	"github.com/xinyujieHong/CSEN174-Project/internal/db"
	"github.com/xinyujieHong/CSEN174-Project/internal/logger"
	"github.com/xinyujieHong/CSEN174-Project/internal/realtime"
	"github.com/xinyujieHong/CSEN174-Project/internal/server"
	"github.com/xinyujieHong/CSEN174-Project/internal/service/auth"
	"github.com/xinyujieHong/CSEN174-Project/internal/service/carpool"
	"github.com/xinyujieHong/CSEN174-Project/internal/service/messaging"
	"github.com/xinyujieHong/CSEN174-Project/internal/service/profile"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(cfg, database, redisCache, log)

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	// Keep cached response counters from drifting away from the
	// stored responses while they sit in Redis with a TTL.
	carpoolSvc := carpool.NewService(appCtx)
	counterSync := realtime.New(cfg.Realtime.PollInterval, func(ctx context.Context) {
		if err := carpoolSvc.SyncResponseCounts(ctx); err != nil {
			log.Warn("response counter sync failed", "err", err)
		}
	})
	counterSync.Start()
	defer counterSync.Stop()

	registrars := []server.Registrar{
		auth.NewRegistrar(appCtx),
		profile.NewRegistrar(appCtx),
		carpool.NewRegistrar(appCtx),
		messaging.NewRegistrar(appCtx),
	}

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr, "env", cfg.App.ENV)

	if err := server.StartHTTPServer(cfg, registrars...); err != nil {
		log.Error("failed to start HTTP server", "err", err)
	}
}
