package main

import (
	"context"
	"log"
	"time"

	"athme/training-app/internal/config"
	"athme/training-app/internal/repository/mongo"
	"athme/training-app/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongo.EnsureSportIndexes(ctx, appDB.Collection("sports"))
	mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))

	sportRepo := mongo.NewMongoSportRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)

	if err := seed.Run(ctx, sportRepo, exerciseRepo); err != nil {
		log.Fatalf("FATAL: Seed failed: %v", err)
	}
	log.Println("Seed completed.")
}
