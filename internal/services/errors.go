package services

import (
	"errors"
	"fmt"
	"strings"

	"dealdesk/internal/repositories"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError names every missing or malformed input field.
// The operation that returned it did not change any state.
type ValidationError struct {
	Fields  []string
	Reasons map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, e.Reasons[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// HasField reports whether field was rejected.
func (e *ValidationError) HasField(field string) bool {
	_, ok := e.Reasons[field]
	return ok
}

// add records the first reason per field.
func (e *ValidationError) add(field, reason string) {
	if e.Reasons == nil {
		e.Reasons = map[string]string{}
	}
	if _, seen := e.Reasons[field]; seen {
		return
	}
	e.Fields = append(e.Fields, field)
	e.Reasons[field] = reason
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func invalidField(field, reason string) error {
	v := &ValidationError{}
	v.add(field, reason)
	return v
}

// NotFoundError reports an operation on an unknown id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// notFoundOr converts a repository miss into a NotFoundError and passes any other error through.
func notFoundOr(kind, id string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return &NotFoundError{Kind: kind, ID: id}
	}
	return err
}
