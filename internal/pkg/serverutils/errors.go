package serverutils

import "errors"

var (
	ErrNotFound           = errors.New("the requested resource was not found")
	ErrAlreadyExists      = errors.New("a resource with the same identifier already exists")
	ErrCreationFailed     = errors.New("the resource could not be created")
	ErrStorageUnavailable = errors.New("the storage backend is unavailable, please try again later")
	ErrInternal           = errors.New("something went wrong on our end, please try again later")
	ErrBadRequest         = errors.New("the request could not be processed due to invalid input")
)
