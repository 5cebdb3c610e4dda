package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	log "github.com/sirupsen/logrus"

	"keepnote/internal/dto"
	"keepnote/internal/metrics"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	logger     *log.Entry
}

func NewConsumerService(subscriber message.Subscriber, topicName string, logger *log.Entry) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		logger:     logger.WithField("component", "event-consumer"),
	}
}

// Consume subscribes to the resource event topic and processes messages in
// the background until ctx is cancelled or the subscriber is closed.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// acked even when malformed
	defer msg.Ack()

	var event dto.ResourceEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.WithError(err).WithField("payload", string(msg.Payload)).Warn("drop malformed resource event")
		return
	}

	metrics.ResourceEvents.WithLabelValues(event.Resource, event.Action).Inc()
	cs.logger.WithFields(log.Fields{
		"event_id":    event.EventId.String(),
		"resource":    event.Resource,
		"action":      event.Action,
		"resource_id": event.ResourceId,
		"occurred_at": event.OccurredAt,
	}).Info("resource event")
}
