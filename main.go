package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelingtastebuds/ttb-api/api"
	"github.com/travelingtastebuds/ttb-api/auth"
	"github.com/travelingtastebuds/ttb-api/config"
	"github.com/travelingtastebuds/ttb-api/external/tiktok"
	"github.com/travelingtastebuds/ttb-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load configuration")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.Trace {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		log.WithError(err).Fatal("connect to mongodb")
	}

	mongoStore := store.NewMongoStore(mongoClient, cfg.DBName)
	defer mongoStore.Close()

	if err := mongoStore.Ping(); err != nil {
		log.WithError(err).Fatal("ping mongodb")
	}
	if err := mongoStore.SetupIndexes(); err != nil {
		log.WithError(err).Fatal("ensure indexes")
	}

	passwords, err := auth.NewPasswordChecker(cfg.AdminPassword)
	if err != nil {
		log.WithError(err).Fatal("hash admin password")
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)

	server := api.NewServer(
		mongoStore,
		passwords,
		tokens,
		tiktok.New(tiktok.DefaultEndpoint),
		cfg.AllowedOrigin,
		cfg.Trace,
	)

	log.WithField("prefix", "main").WithField("port", cfg.Port).Info("server starting")
	if err := server.Run(cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
