// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func returnsErr(fail bool) (int, error) {
	if fail {
		return 0, New("failed")
	}
	return 3, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("x")
	assert.Same(t, err, Log(err))
	assert.Equal(t, 3, Log1(returnsErr(false)))
	assert.Equal(t, 0, Log1(returnsErr(true)))
	assert.Equal(t, 0, Ignore1(returnsErr(true)))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("x")) })
	assert.Equal(t, 3, Must1(returnsErr(false)))
	assert.Panics(t, func() { Must1(returnsErr(true)) })
}

func TestJoin(t *testing.T) {
	assert.NoError(t, Join(nil, nil))
	a, b := New("a"), New("b")
	err := Join(a, nil, b)
	assert.True(t, Is(err, a))
	assert.True(t, Is(err, b))
	assert.Equal(t, "a\nb", err.Error())
}
