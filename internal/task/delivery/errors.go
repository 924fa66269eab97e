package delivery

import (
	"errors"
	"net/http"

	"todo-desktop/internal/task/domain"
)

var (
	ErrNoSelection   = errors.New("select a task first")
	ErrInvalidTaskID = errors.New("invalid task id")
	ErrUnknownAction = errors.New("unknown action")
)

// statusFor maps an error returned by the usecase or by input parsing to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidFilterField),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, ErrNoSelection),
		errors.Is(err, ErrInvalidTaskID),
		errors.Is(err, ErrUnknownAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
