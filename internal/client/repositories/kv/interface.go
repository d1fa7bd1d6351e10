// Package kv implements the persisted key-value store the storefront state
// lives in: string keys mapped to JSON-serialized documents, durable across
// process restarts. Implementations exist for SQLite (on-device default)
// and Postgres (hosted single-writer setups).
package kv

import (
	"context"

	"github.com/dmitrijs2005/medicart/internal/dbx"
)

// Repository is the get/set/remove contract over the kv table.
//
// Get returns (nil, nil) when the key is absent. Set overwrites an existing
// value. Delete is a no-op for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Factory builds a Repository over a plain connection or a transaction,
// so services can run several writes atomically via dbx.WithTx.
type Factory func(db dbx.DBTX) Repository
