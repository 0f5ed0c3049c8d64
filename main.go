package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pushfold-trainer/internal/config"
	"github.com/robalobadob/pushfold-trainer/internal/httpserver"
	"github.com/robalobadob/pushfold-trainer/internal/ranges"
	"github.com/robalobadob/pushfold-trainer/internal/store"
	"os"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	table, err := ranges.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load push/fold ranges")
	}

	profile, err := config.ReadProfileFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read trainer profile")
	}
	resolved, err := profile.Resolve(table)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid trainer profile")
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, table, resolved)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("buckets", len(table.Buckets())).Msg("starting pushfold-trainer")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}
