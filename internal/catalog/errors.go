// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "fmt"

// CorruptStoreError means a persisted blob exists but cannot be parsed into
// the aggregate shape. Recovery (re-seeding) is an explicit caller decision,
// never done silently here.
type CorruptStoreError struct {
	Key string
	Err error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("catalog: corrupt blob at key %q: %v", e.Key, e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}
