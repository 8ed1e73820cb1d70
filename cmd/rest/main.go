package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rude-dashboard-be/internal/bootstrap"
	"rude-dashboard-be/internal/config"
	"rude-dashboard-be/internal/server"
	"rude-dashboard-be/internal/tracer"
	"rude-dashboard-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Database
	client, db, err := database.NewMongoDB(ctx, database.MongoConfig{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Panicf("Unable to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(db, cfg)
	defer container.Close()

	// 4. Start Background Services
	log.Println("Background: Starting transaction confirmation worker...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
