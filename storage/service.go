//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mocks/mock_storage_service.go -package=mocks

// Package storage abstracts the key-value capability the repositories
// persist into. Each logical collection is serialized as a single JSON
// value under one namespaced key.
package storage

import "encoding/json"

// Usage reports approximate storage consumption.
type Usage struct {
	Used       int64   `json:"used"`
	Available  int64   `json:"available"`
	Percentage float64 `json:"percentage"`
}

// Service is the storage capability contract. Get reports absence through
// the boolean rather than an error; Set may fail with QuotaExceededError or
// StorageUnavailableError from the errors package.
type Service interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Clear() error
	IsAvailable() bool
	Usage() (Usage, error)
}

// GetJSON reads and unmarshals one value. The boolean is false when the key
// is absent.
func GetJSON[T any](s Service, key string) (T, bool, error) {
	var out T
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, err
	}
	return out, true, nil
}

// SetJSON marshals and writes one value.
func SetJSON[T any](s Service, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
