// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchbox/benchjson"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite3", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	master := benchjson.Dataset{"cat1": {"testA": {1, 2, 3}, "testB": {4, 5}}}
	current := benchjson.Dataset{"cat1": {"testA": {2, 3, 4}}}

	id, err := s.RecordRun(ctx, time.Now(),
		Run{Branch: "master", Data: master},
		Run{Branch: "current", Data: current})
	require.NoError(t, err)

	n, err := s.CountSamples(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestRecordRunIDsAdvance(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	d := benchjson.Dataset{"cat": {"t": {1}}}
	id1, err := s.RecordRun(ctx, time.Now(), Run{Branch: "master", Data: d})
	require.NoError(t, err)
	id2, err := s.RecordRun(ctx, time.Now(), Run{Branch: "master", Data: d})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
}

func TestOpenIdempotentSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open("sqlite3", path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening over an existing schema must not error.
	s, err = Open("sqlite3", path)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}
