package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/parlorgames/bingohall/internal/caller"
	"github.com/parlorgames/bingohall/internal/card"
	"github.com/parlorgames/bingohall/internal/common/clock"
	"github.com/parlorgames/bingohall/internal/common/uuid"
	"github.com/parlorgames/bingohall/internal/handlers/httpapi"
	"github.com/parlorgames/bingohall/internal/handlers/ws"
	roomRepo "github.com/parlorgames/bingohall/internal/repositories/room"
	sessionRepo "github.com/parlorgames/bingohall/internal/repositories/session"
	roomService "github.com/parlorgames/bingohall/internal/services/room"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	// Room storage: in-memory by default, Redis when REDIS_ADDR is set
	var rooms roomRepo.Repository = roomRepo.NewMemory()
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		redisRooms, err := roomRepo.NewRedis(&roomRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create Redis room repository: %v", err)
		}
		rooms = redisRooms
		log.Printf("Using Redis room store at %s", addr)
	}

	sessions := sessionRepo.NewMemory()
	hub := ws.NewHub()

	roomSvc, err := roomService.New(&roomService.Config{
		RoomRepo:      rooms,
		CardGenerator: card.New(&card.Config{}),
		NumberCaller:  caller.New(&caller.Config{}),
		Broadcaster:   hub,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create room service: %v", err)
	}

	apiHandler, err := httpapi.New(&httpapi.Config{
		RoomService: roomSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP API handler: %v", err)
	}

	gateway, err := ws.New(&ws.Config{
		Hub:           hub,
		RoomService:   roomSvc,
		SessionRepo:   sessions,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create websocket gateway: %v", err)
	}

	mux := http.NewServeMux()
	apiHandler.Register(mux)
	mux.Handle("/ws", gateway)

	srv := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: mux,
	}

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for a termination signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
