package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidFilterField = errors.New("invalid filter field")
	ErrInvalidPriority    = errors.New("priority must be a whole number")
)
