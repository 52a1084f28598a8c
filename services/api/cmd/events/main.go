package main

import (
	"os"
	"os/signal"
	"syscall"

	"craftledger/pkg/config"
	"craftledger/pkg/logger"
	"craftledger/pkg/queue"
)

// Tails the ledger exchange and writes every event to the log.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.NewWithWriter(os.Stdout, cfg.LogLevel)
	if cfg.RabbitMQHost == "" {
		log.Error("RABBITMQ_HOST is not set")
		os.Exit(1)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	err = queueClient.Consume(func(routingKey string, payload map[string]interface{}) error {
		log.With("event", routingKey).Info("user=%v creator=%v tokens=%v amount=%v balance=%v",
			payload["userId"], payload["creatorId"], payload["tokens"], payload["amount"], payload["balance"])
		return nil
	})
	if err != nil {
		log.Error("Failed to consume ledger events: %v", err)
		panic(err)
	}

	log.Info("Consuming ledger events from %s", queue.LedgerQueueName)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Ledger event consumer exited")
}
