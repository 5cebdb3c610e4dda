package dto

import (
	"time"
)

// NoteRequest is the body accepted by create and update. NoteCreationDate is
// decoded so that callers sending it get no error, but it is never persisted.
type NoteRequest struct {
	NoteId           int               `json:"noteId" validate:"gte=0"`
	NoteTitle        string            `json:"noteTitle" validate:"max=255"`
	NoteContent      string            `json:"noteContent"`
	NoteStatus       string            `json:"noteStatus" validate:"max=64"`
	NoteCreationDate *time.Time        `json:"noteCreationDate,omitempty"`
	Category         *CategoryPayload  `json:"category"`
	Reminders        []ReminderPayload `json:"reminders" validate:"dive"`
	NoteCreatedBy    string            `json:"noteCreatedBy" validate:"max=255"`
}

type NoteResponse struct {
	NoteId           int               `json:"noteId"`
	NoteTitle        string            `json:"noteTitle"`
	NoteContent      string            `json:"noteContent"`
	NoteStatus       string            `json:"noteStatus"`
	NoteCreationDate time.Time         `json:"noteCreationDate"`
	Category         *CategoryPayload  `json:"category"`
	Reminders        []ReminderPayload `json:"reminders"`
	NoteCreatedBy    string            `json:"noteCreatedBy"`
}

type CategoryPayload struct {
	CategoryId           string     `json:"categoryId"`
	CategoryName         string     `json:"categoryName"`
	CategoryDescription  string     `json:"categoryDescription"`
	CategoryCreatedBy    string     `json:"categoryCreatedBy"`
	CategoryCreationDate *time.Time `json:"categoryCreationDate,omitempty"`
}
