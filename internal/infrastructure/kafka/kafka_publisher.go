package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) PublishSuspiciousPayment(topic string, event SuspiciousPaymentEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.MerchantID),
		Value: v,
		Time:  time.Now(),
		Topic: topic,
	})
}

// BatchPublish publishes one batch of suspicious payment events.
func (k *DefaultKafkaPublisher) BatchPublish(topic string, events []SuspiciousPaymentEvent) error {
	if len(events) == 0 {
		return nil
	}

	if len(events) == 1 {
		return k.PublishSuspiciousPayment(topic, events[0])
	}

	messages := make([]kafka.Message, 0, len(events))
	timestamp := time.Now()

	for _, event := range events {
		msg, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal event for payment %s: %v", event.PaymentID, err)
			continue
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(event.MerchantID),
			Value: msg,
			Time:  timestamp,
			Topic: topic,
		})
	}

	if len(messages) == 0 {
		return fmt.Errorf("no valid messages to publish")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to write batch messages: %w", err)
	}

	return nil
}

// BatchPublishWithRetry splits events into batches and retries each batch
// with linear backoff. It fails only when every batch failed.
func (k *DefaultKafkaPublisher) BatchPublishWithRetry(topic string, events []SuspiciousPaymentEvent, batchSize int, maxRetries int) error {
	if len(events) == 0 {
		return nil
	}

	if batchSize <= 0 {
		batchSize = 100
	}

	var allErrors []error
	successfulCount := 0

	for i := 0; i < len(events); i += batchSize {
		end := i + batchSize
		if end > len(events) {
			end = len(events)
		}

		batch := events[i:end]

		var err error
		for attempt := 1; attempt <= maxRetries; attempt++ {
			err = k.BatchPublish(topic, batch)
			if err == nil {
				successfulCount += len(batch)
				break
			}

			log.Printf("Batch publish attempt %d failed: %v", attempt, err)

			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * time.Second)
			}
		}

		if err != nil {
			allErrors = append(allErrors, fmt.Errorf("batch %d-%d failed after %d attempts: %w",
				i, end, maxRetries, err))
		}
	}

	log.Printf("Batch publish completed: %d/%d events successful", successfulCount, len(events))

	if successfulCount == 0 && len(allErrors) > 0 {
		return fmt.Errorf("all batches failed: %v", allErrors)
	}

	return nil
}
