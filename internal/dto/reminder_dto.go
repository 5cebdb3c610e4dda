package dto

import "time"

// ReminderPayload is both the request and the response shape of a reminder.
// ReminderCreationDate is ignored on input.
type ReminderPayload struct {
	ReminderId           string     `json:"reminderId" validate:"max=64"`
	ReminderName         string     `json:"reminderName" validate:"max=255"`
	ReminderDescription  string     `json:"reminderDescription"`
	ReminderType         string     `json:"reminderType" validate:"max=64"`
	ReminderCreatedBy    string     `json:"reminderCreatedBy" validate:"max=255"`
	ReminderCreationDate *time.Time `json:"reminderCreationDate,omitempty"`
}
