package view

import (
	"fmt"
)

// Status is the externally visible phase of a viewer.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// User facing failure messages, one per viewer.
const (
	HouseListFailedMessage = "Failed to load houses. Please try again later."
	HouseFailedMessage     = "Failed to load house details. Please try again later."
	CharacterFailedMessage = "Failed to load character details. Please try again later."
)

// State is what a viewer renders: Loading, Ready(Data) or Failed(Message).
// Err keeps the underlying cause for logging and is never shown.
type State[T any] struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Err     error  `json:"-"`
}

func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

func Ready[T any](data T) State[T] {
	return State[T]{Status: StatusReady, Data: data}
}

func Failed[T any](message string, err error) State[T] {
	return State[T]{Status: StatusFailed, Message: message, Err: err}
}

// CanRetry reports whether the retry action is available.
func (s State[T]) CanRetry() bool {
	return s.Status == StatusFailed
}

func (s State[T]) IsLoading() bool { return s.Status == StatusLoading }
func (s State[T]) IsReady() bool   { return s.Status == StatusReady }
