package entity

import "time"

type Note struct {
	Id        int
	Title     string
	Content   string
	Status    string
	CreatedAt time.Time
	Category  *Category
	Reminders []Reminder
	CreatedBy string
}

type Category struct {
	Id          string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   *time.Time
}
