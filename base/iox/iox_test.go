// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"encoding/json"
	"io"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

var (
	jsonDecoder = NewDecoderFunc(json.NewDecoder)
	jsonEncoder = NewEncoderFunc(json.NewEncoder)
)

func TestReadWrite(t *testing.T) {
	b, err := WriteBytes(point{1, 2}, jsonEncoder)
	require.NoError(t, err)
	assert.JSONEq(t, `{"X":1,"Y":2}`, string(b))

	var p point
	require.NoError(t, ReadBytes(&p, b, jsonDecoder))
	assert.Equal(t, point{1, 2}, p)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "p.json")
	require.NoError(t, Save(point{3, 4}, fn, jsonEncoder))
	var p point
	require.NoError(t, Open(&p, fn, jsonDecoder))
	assert.Equal(t, point{3, 4}, p)

	assert.Error(t, Open(&p, filepath.Join(t.TempDir(), "missing.json"), jsonDecoder))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"p.json": {Data: []byte(`{"X":5}`)}}
	var p point
	require.NoError(t, OpenFS(&p, fsys, "p.json", jsonDecoder))
	assert.Equal(t, 5, p.X)
}

type closingEncoder struct {
	closed bool
}

func (c *closingEncoder) Encode(v any) error { return nil }
func (c *closingEncoder) Close() error {
	c.closed = true
	return nil
}

func TestWriteCloses(t *testing.T) {
	ce := &closingEncoder{}
	require.NoError(t, Write(1, io.Discard, func(io.Writer) Encoder { return ce }))
	assert.True(t, ce.closed)
}
