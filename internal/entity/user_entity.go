package entity

import "time"

type User struct {
	Id        string
	Name      string
	Password  string
	Mobile    string
	CreatedAt time.Time
}
