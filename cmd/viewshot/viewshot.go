// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command viewshot lays out and renders a demo view tree, or one
// styled by a given style sheet, and saves the result as an image.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/image/colornames"

	"cogentcore.org/uicore/base/errors"
	"cogentcore.org/uicore/base/iox/imagex"
	"cogentcore.org/uicore/base/logx"
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/settings"
	"cogentcore.org/uicore/styles"
	"cogentcore.org/uicore/view"
)

var (
	output   = flag.String("o", "viewshot.png", "the image file to save, in a format given by its extension")
	width    = flag.Int("width", 480, "the width of the window")
	height   = flag.Int("height", 320, "the height of the window")
	sheet    = flag.String("css", "", "a style sheet file applied to the demo tree")
	imgFile  = flag.String("img", "", "an image file shown in the demo tree")
	settFile = flag.String("settings", "", "the settings file; defaults to the user settings file")
	vv       = flag.Bool("vv", false, "log debug messages")
	verbose  = flag.Bool("v", false, "log info messages")
	quiet    = flag.Bool("q", false, "only log errors")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	logx.SetDefaultLogger()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "viewshot:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Viewshot renders a view tree to an image file.\n")
	fmt.Fprintf(os.Stderr, "Usage:\n\tviewshot [flags]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func run() error {
	st, err := loadSettings()
	if err != nil {
		return err
	}
	root, err := demo()
	if err != nil {
		return err
	}
	if *sheet != "" {
		src, err := os.ReadFile(*sheet)
		if err != nil {
			return err
		}
		sh, err := styles.ParseSheet(string(src))
		if err != nil {
			return err
		}
		errors.Log(root.ApplySheet(sh))
	}

	r := paint.NewRaster(*width, *height)
	w := view.NewWindow(root, r, math32.Vec2(float32(*width), float32(*height)))
	w.ApplySettings(st)
	if *vv || *verbose || *quiet {
		logx.UserLevel = logx.LevelFromFlags(*vv, *verbose, *quiet)
	}
	start := time.Now()
	w.Update(start)
	slog.Info("viewshot: rendered", "size", w.Size(), "time", time.Since(start))
	if err := imagex.Save(r.Image, *output); err != nil {
		return fmt.Errorf("saving %s: %w", *output, err)
	}
	slog.Info("viewshot: saved", "file", *output)
	return nil
}

// loadSettings loads the settings file given by flag, or else the
// user settings file, which need not exist.
func loadSettings() (*settings.Settings, error) {
	fn := *settFile
	if fn == "" {
		p, err := settings.DefaultPath()
		if errors.Log(err) != nil {
			return settings.Default(), nil
		}
		fn = p
	}
	return settings.Load(fn)
}

// demo returns a tree using every layout: a vbox holding a title, an
// hbox of flexible swatches, an inline flow of words, an optional
// image and an absolutely positioned badge.
func demo() (*view.View, error) {
	root := view.New().SetName("root")
	errors.Log(root.SetStyleCSS("layout: vbox; padding: 12px; background-color: white"))

	title := view.NewLabel("uicore views").SetAlign(view.AlignCenter)
	title.SetName("title")
	title.SetTextStyle(paint.TextStyle{Color: colornames.Navy})
	root.AddSubview(title)

	row := view.New().SetName("row").AddClass("row")
	errors.Log(row.SetStyleCSS("layout: hbox; height: 60px; margin: 8px 0"))
	for i, c := range []string{"tomato", "gold", "seagreen"} {
		sw := view.New().AddClass("swatch")
		errors.Log(sw.SetStyleCSS(fmt.Sprintf("flex: %d 1 20px; background-color: %s; border: 2px solid black; margin-right: 4px", i+1, c)))
		row.AddSubview(sw)
	}
	root.AddSubview(row)

	flow := view.New().SetName("flow")
	errors.Log(flow.SetStyleCSS("layout: inline; padding: 4px; border: 1px solid gray"))
	for _, word := range []string{"Blocks", "stack,", "lines", "wrap,", "boxes", "flex", "and", "badges", "float."} {
		l := view.NewLabel(word)
		errors.Log(l.SetStyleCSS("margin-right: 6px"))
		flow.AddSubview(l)
	}
	root.AddSubview(flow)

	if *imgFile != "" {
		iv := view.NewImageView(nil)
		if err := iv.Open(*imgFile); err != nil {
			return nil, err
		}
		errors.Log(iv.SetStyleCSS("width: 50%; margin-top: 8px"))
		root.AddSubview(iv)
	}

	badge := view.NewLabel("NEW").SetLineBreak(view.TruncateTail)
	badge.SetName("badge")
	errors.Log(badge.SetStyleCSS("position: absolute; top: 4px; right: 4px; width: 40px; padding: 2px; background-color: crimson"))
	badge.SetTextStyle(paint.TextStyle{Color: colornames.White})
	root.AddSubview(badge)
	return root, nil
}
