// main.go
package main

import (
	"context"
	"log"

	"business-buddy/cmd"
	"business-buddy/internal/data/store"
	"business-buddy/internal/wire"
	"business-buddy/pkg/database"
	"business-buddy/pkg/llm"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Build the record store: in-memory by default, remote table when configured
	var st *store.Store
	switch config.Store.Driver {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		st = store.NewPostgresStore(db, logger)

	default:
		st = store.NewMemoryStore(logger)

		if config.Store.SeedDemoUsers {
			if err := store.SeedDemoUsers(context.Background(), st.User, logger); err != nil {
				logger.Warn("Failed to seed demo users", zap.Error(err))
			}
		}
	}

	// Hosted model provider behind the chat endpoint
	completer := llm.NewClient(config.Chat, logger)

	// Wire all dependencies
	app := wire.Wiring(st, completer, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
