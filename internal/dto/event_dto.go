package dto

import (
	"time"

	"github.com/google/uuid"
)

type ResourceEvent struct {
	EventId    uuid.UUID `json:"eventId"`
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ResourceId string    `json:"resourceId"`
	OccurredAt time.Time `json:"occurredAt"`
}
