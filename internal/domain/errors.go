package domain

import (
	"errors"
	"fmt"
)

// DataLoadError signals a missing or malformed backing store.
type DataLoadError struct {
	Store string
	Err   error
}

func (e DataLoadError) Error() string {
	if e.Store == "" {
		return "data load failed"
	}
	if e.Err == nil {
		return fmt.Sprintf("failed to load %s", e.Store)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Store, e.Err)
}

func (e DataLoadError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InsufficientCapacityError reports the exact number of free seats left
// when a request asks for more than that.
type InsufficientCapacityError struct {
	TrainID    string
	TravelDate string
	Requested  int
	Available  int
}

func (e InsufficientCapacityError) Error() string {
	return fmt.Sprintf("train %s on %s: %d seats requested, only %d available",
		e.TrainID, e.TravelDate, e.Requested, e.Available)
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsDataLoad(err error) bool {
	var target DataLoadError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInsufficientCapacity(err error) bool {
	var target InsufficientCapacityError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
