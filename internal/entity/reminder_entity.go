package entity

import "time"

type Reminder struct {
	Id          string
	Name        string
	Description string
	Type        string
	CreatedBy   string
	CreatedAt   time.Time
}
