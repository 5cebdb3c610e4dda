package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"keepnote/internal/dto"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (p *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.publisher.Publish(p.topicName, msg)
}

// publishEvent announces a completed mutation. Failures are logged, never
// returned.
func publishEvent(ctx context.Context, publisher IPublisherService, logger *log.Entry, resource, action, resourceId string) {
	if publisher == nil {
		return
	}

	event := dto.ResourceEvent{
		EventId:    uuid.New(),
		Resource:   resource,
		Action:     action,
		ResourceId: resourceId,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err == nil {
		err = publisher.Publish(ctx, payload)
	}
	if err != nil {
		logger.WithError(err).WithFields(log.Fields{
			"action":      action,
			"resource_id": resourceId,
		}).Error("publish resource event")
	}
}
