package main

import (
	"context"
	"log"

	"brightside-be/internal/bootstrap"
	"brightside-be/internal/config"
	"brightside-be/internal/server"
	"brightside-be/internal/tracer"
	"brightside-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	// nil when DB_CONNECTION_STRING is unset; stores fall back to memory
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.NatsPublisher.Close()

	go container.WebSocketHub.Run()

	go func() {
		log.Println("Background: Starting Alert Consumer...")
		if err := container.AlertConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Alert Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
