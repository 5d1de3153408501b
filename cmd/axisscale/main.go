// Command axisscale prints the data units per point along each axis of a
// plot view read from a snapshot file.
//
// Usage:
//
//	axisscale -config view.yaml
//	axisscale -config view.json -az 30 -el 20 -width 640 -height 480 -units px -dpi 96
//
// Every setting can also be given as an AXISSCALE_* environment variable,
// e.g. AXISSCALE_VIEW_AZIMUTH=30.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/axisscale"
)

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"az":         "view.azimuth",
	"el":         "view.elevation",
	"width":      "viewport.width",
	"height":     "viewport.height",
	"units":      "viewport.units",
	"dpi":        "viewport.dpi",
	"projection": "projection",
	"log-level":  "logLevel",
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("axisscale", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "view snapshot file (json, yaml or toml)")
	fs.Float64("az", 0, "azimuth in degrees")
	fs.Float64("el", 0, "elevation in degrees")
	fs.Float64("width", 0, "viewport width")
	fs.Float64("height", 0, "viewport height")
	fs.String("units", "", "viewport units: pt, px, in or cm")
	fs.Float64("dpi", 0, "resolution for px units")
	fs.String("projection", "", "orthographic or perspective")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Only flags given on the command line override the file.
	overrides := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := loadConfig(*configPath, overrides)
	if err != nil {
		fmt.Fprintln(stderr, "axisscale:", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	axisscale.SetLogger(logger)

	in, err := cfg.input()
	if err != nil {
		logger.Error("invalid view snapshot", "err", err)
		return 1
	}

	res, err := axisscale.Compute(in)
	if err != nil {
		logger.Error("cannot compute axis scale", "err", err)
		return 1
	}

	printResult(stdout, res)
	return 0
}

func printResult(w io.Writer, res axisscale.Result) {
	p := message.NewPrinter(language.English)
	for _, a := range []axisscale.Axis{axisscale.AxisX, axisscale.AxisY, axisscale.AxisZ} {
		p.Fprintf(w, "%s: %.6g units/pt\n", a, res.Factor(a))
	}
}
