package dto

import "time"

type UserRequest struct {
	UserId       string `json:"userId" validate:"max=64"`
	UserName     string `json:"userName" validate:"max=255"`
	UserPassword string `json:"userPassword" validate:"max=72"`
	UserMobile   string `json:"userMobile" validate:"max=32"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	UserId        string    `json:"userId"`
	UserName      string    `json:"userName"`
	UserMobile    string    `json:"userMobile"`
	UserAddedDate time.Time `json:"userAddedDate"`
}
