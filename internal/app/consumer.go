package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hrms-backend/internal/audit"
	"hrms-backend/internal/config"
	"hrms-backend/internal/messaging/kafka/consumer"
	"hrms-backend/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer copies lifecycle events from Kafka into the Mongo audit trail.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	client, err := connection.ConnectMongoWithRetry(cfg.Mongo.URI, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect failed", zap.Error(err))
		}
	}()

	auditRepo := audit.NewRepository(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
	if err := auditRepo.EnsureIndexes(context.Background()); err != nil {
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	auditService := audit.NewService(auditRepo, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          cfg.Kafka.LifecycleTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeRecordLifecycle(ctx, reader, auditService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
