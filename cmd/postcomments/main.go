package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Dcode36/post-comment-system/internal/config"
	"github.com/Dcode36/post-comment-system/internal/db"
	"github.com/Dcode36/post-comment-system/internal/routes"
	"github.com/Dcode36/post-comment-system/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Info().Msg("Post-Comments service starting")

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Connect(ctx, cfg.MongoURI); err != nil {
		log.Fatal().Err(err).Msgf("unable to connect to database at %v", cfg.MongoURI)
	}
	defer db.Disconnect(context.Background())

	database := db.Database(cfg.DBName)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal().Err(err).Msg("unable to create indexes")
	}

	srv := routes.NewServer(
		store.NewUserStore(database),
		store.NewPostStore(database),
		store.NewCommentStore(database),
		cfg,
	)
	router := srv.InitializeRoutes()

	log.Info().Msg(fmt.Sprintf("Server is running on http://localhost%v", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("unable to start server")
	}
}
