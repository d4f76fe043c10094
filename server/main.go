package main

import (
	"context"
	"flag"

	"github.com/meikuraledutech/decision"
	"github.com/meikuraledutech/decision/config"
	"github.com/meikuraledutech/decision/logging"
	"github.com/meikuraledutech/decision/metrics"
	"github.com/meikuraledutech/decision/postgres"
	"github.com/rs/zerolog/log"
)

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	flag.Parse()

	cfg := config.Load(*envFile)

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logging.Init(logCfg)

	var store decision.Store
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL is not set, reports will not be stored")
	} else {
		pg, pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect")
		}
		defer pool.Close()
		store = pg
	}

	v := decision.New(
		decision.WithLogger(logging.WithComponent("validator")),
		decision.WithRecorder(metrics.Recorder{}),
	)

	app := newApp(v, store, cfg.MaxBodyBytes, logging.WithComponent("server"))

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
