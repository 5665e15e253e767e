// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursors

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorNames(t *testing.T) {
	var c Cursor
	require.NoError(t, c.SetString("Resize-EW"))
	assert.Equal(t, ResizeEW, c)
	require.NoError(t, c.SetString("default"))
	assert.Equal(t, Arrow, c)
	assert.Error(t, c.SetString("grabby"))
	assert.Equal(t, "not-allowed", NotAllowed.String())
}

func TestSpec(t *testing.T) {
	var s Spec
	assert.True(t, s.IsInherit())
	assert.Equal(t, "inherit", s.String())
	assert.Equal(t, "text", StandardSpec(Text).String())
	cs := CustomSpec(&Custom{Image: image.NewRGBA(image.Rect(0, 0, 4, 8))})
	assert.False(t, cs.IsInherit())
	assert.Equal(t, "custom (4,8)", cs.String())
}
