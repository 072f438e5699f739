// Command pathrender renders an SVG path-data string to a PNG image.
//
// Usage:
//
//	pathrender [flags] PATH
//
// The image is sized to the path's bounding box plus a 10 unit margin
// on every side.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quicoa/pathkit"
)

func main() {
	var (
		fillRule = flag.String("fill-rule", "winding", "fill rule (winding, even-odd)")
		fgColor  = flag.String("fg-color", "black", "foreground color")
		bgColor  = flag.String("bg-color", "white", "background color")
		output   = flag.String("output", "", "the output file (default \"path.png\")")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fatal("No path specified")
	}
	if flag.NArg() > 1 {
		fatal("Can only render a single path")
	}

	path, err := pathkit.ParsePath(flag.Arg(0))
	if err != nil {
		fatal("%v", err)
	}

	rule, err := pathkit.ParseFillRule(*fillRule)
	if err != nil {
		fatal("%v", err)
	}
	fg, err := pathkit.ParseColor(*fgColor)
	if err != nil {
		fatal("%v", err)
	}
	bg, err := pathkit.ParseColor(*bgColor)
	if err != nil {
		fatal("%v", err)
	}

	bounds, ok := path.Bounds()
	if !ok {
		fatal("Path is empty")
	}
	bounds = bounds.Inset(-10)

	img := pathkit.Render(path, rule, fg, bg, bounds)

	filename := *output
	if filename == "" {
		filename = "path.png"
	}
	f, err := os.Create(filename)
	if err != nil {
		fatal("Saving png to '%s' failed: %v", filename, err)
	}
	if err := pathkit.WritePNG(f, img); err != nil {
		f.Close()
		fatal("Saving png to '%s' failed: %v", filename, err)
	}
	if err := f.Close(); err != nil {
		fatal("Saving png to '%s' failed: %v", filename, err)
	}

	if *output == "" {
		fmt.Printf("Output written to '%s'.\n", filename)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
