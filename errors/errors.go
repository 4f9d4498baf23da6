// Package errors defines the domain error taxonomy.
// Repositories validate and fail fast with one of these types before any
// write; callers pick them apart with errors.As for user-facing messaging.
package errors

import "fmt"

// ValidationError reports malformed input, caught before any write.
type ValidationError struct {
	Field      string
	Constraint string
	Message    string
}

func NewValidationError(message, field, constraint string) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an operation targeting an id absent from its collection.
type NotFoundError struct {
	EntityType string
	EntityID   string
}

func NewNotFoundError(entityType, entityID string) *NotFoundError {
	return &NotFoundError{EntityType: entityType, EntityID: entityID}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.EntityType, e.EntityID)
}

// BusinessRuleViolationError reports structurally valid input that breaks a
// cross-entity invariant (deleting an in-use group, referencing a missing one).
type BusinessRuleViolationError struct {
	Rule    string
	Message string
}

func NewBusinessRuleViolationError(message, rule string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Rule: rule, Message: message}
}

func (e *BusinessRuleViolationError) Error() string {
	return e.Message
}

// QuotaExceededError reports capacity exhaustion on write.
type QuotaExceededError struct{}

func (e *QuotaExceededError) Error() string {
	return "storage quota exceeded, delete some versions or events"
}

// StorageUnavailableError reports an inaccessible storage capability.
type StorageUnavailableError struct{}

func (e *StorageUnavailableError) Error() string {
	return "storage is not available"
}
