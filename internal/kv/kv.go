// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package kv provides the persistent key-value store the catalog aggregate
// blob lives in. Three drivers share one small contract: Valkey (default),
// Postgres (single blobs table), and an in-memory map for tests.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is the get/set/delete contract the catalog repository writes the
// aggregate blob through. Values are opaque JSON text.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
