// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursorimg provides the cached scaling of custom cursor
// images to the sizes requested by the platform.
package cursorimg

import (
	"errors"
	"image"

	"golang.org/x/image/draw"

	"cogentcore.org/uicore/cursors"
)

// Cursor represents a cached rendered cursor, with the [image.Image]
// of the cursor and its hotspot.
type Cursor struct {
	// The cached image of the cursor.
	Image image.Image
	// The size of the cursor.
	Size int
	// The hotspot is expressed in terms of raw cursor pixels.
	Hotspot image.Point
}

type cacheKey struct {
	custom *cursors.Custom
	size   int
}

// Cache contains rendered cursors, by custom cursor and size.
// The zero value is ready to use. It is not safe for concurrent use.
type Cache struct {
	cursors map[cacheKey]*Cursor
}

// Len returns the number of cached cursors.
func (c *Cache) Len() int {
	return len(c.cursors)
}

// Get returns the cursor object corresponding to the given custom
// cursor, scaled to a square of the given size. If it is not
// already cached, it renders and caches it.
func (c *Cache) Get(cc *cursors.Custom, size int) (*Cursor, error) {
	if cc == nil || cc.Image == nil {
		return nil, errors.New("cursorimg.Get: custom cursor has no image")
	}
	if size <= 0 {
		return nil, errors.New("cursorimg.Get: size must be positive")
	}
	k := cacheKey{cc, size}
	if cur, ok := c.cursors[k]; ok {
		return cur, nil
	}
	if c.cursors == nil {
		c.cursors = map[cacheKey]*Cursor{}
	}

	sb := cc.Image.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(img, img.Bounds(), cc.Image, sb, draw.Src, nil)

	hot := image.Pt(cc.Hotspot.X*size/max(sb.Dx(), 1), cc.Hotspot.Y*size/max(sb.Dy(), 1))
	cur := &Cursor{Image: img, Size: size, Hotspot: hot}
	c.cursors[k] = cur
	return cur, nil
}

// Clear removes all cached cursors.
func (c *Cache) Clear() {
	c.cursors = nil
}
