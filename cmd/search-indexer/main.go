package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/juliavi/reaction/internal/indexer"
	"github.com/juliavi/reaction/shared/events"
	redisClient "github.com/juliavi/reaction/shared/redis"
)

// The search indexer is a standalone consumer of account change events. It
// holds no HTTP surface: it reads the account.events stream in a consumer
// group and keeps the group-membership search index in Redis up to date.
func main() {
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redis, err := redisClient.NewClient(redisAddr, "", 0)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	groupIndex := indexer.NewGroupIndex(redis.Client)
	eventSvc := indexer.NewAccountEventService(groupIndex)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
		Group:    "search-indexer-group",
		Consumer: getEnv("CONSUMER_NAME", "indexer-consumer-1"),
		Stream:   events.AccountEventsStream,
		Handler:  eventSvc.HandleAccountEvent,
	})

	log.Println("Search indexer starting")
	if err := subscriber.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Subscriber stopped: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
