package store

import (
	"context"
	"time"
)

// NullStore never stores anything.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return NullStore{}
}

func (NullStore) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullStore) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullStore) Delete(context.Context, string) error                     { return nil }
func (NullStore) Name() string                                             { return BackendNone }
func (NullStore) Close() error                                             { return nil }

var _ Store = NullStore{}
