package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/axisscale"
)

// viewConfig is a plot snapshot as read from file, environment and flags.
type viewConfig struct {
	XLim   []float64 `mapstructure:"xlim"`
	YLim   []float64 `mapstructure:"ylim"`
	ZLim   []float64 `mapstructure:"zlim"`
	Aspect []float64 `mapstructure:"aspect"`

	View struct {
		Azimuth   float64   `mapstructure:"azimuth"`
		Elevation float64   `mapstructure:"elevation"`
		Up        []float64 `mapstructure:"up"`
	} `mapstructure:"view"`

	Viewport struct {
		Width  float64 `mapstructure:"width"`
		Height float64 `mapstructure:"height"`
		Units  string  `mapstructure:"units"`
		DPI    float64 `mapstructure:"dpi"`
	} `mapstructure:"viewport"`

	Projection string `mapstructure:"projection"`

	Scale struct {
		X string `mapstructure:"x"`
		Y string `mapstructure:"y"`
		Z string `mapstructure:"z"`
	} `mapstructure:"scale"`

	LogLevel string `mapstructure:"logLevel"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("xlim", []float64{0, 1})
	v.SetDefault("ylim", []float64{0, 1})
	v.SetDefault("zlim", []float64{0, 1})
	v.SetDefault("aspect", []float64{1, 1, 1})

	v.SetDefault("view.azimuth", -37.5)
	v.SetDefault("view.elevation", 30)
	v.SetDefault("view.up", []float64{0, 0, 1})

	v.SetDefault("viewport.width", 432)
	v.SetDefault("viewport.height", 324)
	v.SetDefault("viewport.units", "pt")
	v.SetDefault("viewport.dpi", 96)

	v.SetDefault("projection", "orthographic")
	v.SetDefault("scale.x", "linear")
	v.SetDefault("scale.y", "linear")
	v.SetDefault("scale.z", "linear")

	v.SetDefault("logLevel", "info")
}

// loadConfig reads the snapshot. Precedence, highest first: overrides,
// AXISSCALE_* environment variables, the config file, defaults.
// An empty path skips the file.
func loadConfig(path string, overrides map[string]string) (*viewConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("AXISSCALE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	var cfg viewConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}

// input converts the snapshot into a computation input.
func (c *viewConfig) input() (axisscale.Input, error) {
	var in axisscale.Input

	for i, lim := range [][]float64{c.XLim, c.YLim, c.ZLim} {
		a := axisscale.Axis(i)
		if len(lim) != 2 {
			return in, fmt.Errorf("%slim: want 2 values, got %d", a, len(lim))
		}
		in.Ranges[a] = axisscale.AxisRange{Min: lim[0], Max: lim[1]}
	}

	aspect, err := vec3("aspect", c.Aspect)
	if err != nil {
		return in, err
	}
	in.Aspect = axisscale.AspectRatio(aspect)

	up, err := vec3("view.up", c.View.Up)
	if err != nil {
		return in, err
	}
	in.View = axisscale.View{Azimuth: c.View.Azimuth, Elevation: c.View.Elevation, Up: up}

	in.Viewport, err = c.viewport()
	if err != nil {
		return in, err
	}

	switch strings.ToLower(c.Projection) {
	case "orthographic", "ortho":
		in.Projection = axisscale.Orthographic
	case "perspective":
		in.Projection = axisscale.Perspective
	default:
		return in, fmt.Errorf("projection: unknown mode %q", c.Projection)
	}

	for i, s := range []string{c.Scale.X, c.Scale.Y, c.Scale.Z} {
		a := axisscale.Axis(i)
		switch strings.ToLower(s) {
		case "linear":
			in.Scales[a] = axisscale.Linear
		case "log":
			in.Scales[a] = axisscale.Log
		default:
			return in, fmt.Errorf("scale.%s: unknown kind %q", a, s)
		}
	}
	return in, nil
}

func (c *viewConfig) viewport() (axisscale.Viewport, error) {
	w, h := c.Viewport.Width, c.Viewport.Height
	switch strings.ToLower(c.Viewport.Units) {
	case "pt", "points":
		return axisscale.Viewport{Width: w, Height: h}, nil
	case "px", "pixels":
		if !(c.Viewport.DPI > 0) {
			return axisscale.Viewport{}, fmt.Errorf("viewport.dpi: must be positive, got %v", c.Viewport.DPI)
		}
		return axisscale.ViewportFromPixels(w, h, c.Viewport.DPI), nil
	case "in", "inches":
		return axisscale.ViewportFromInches(w, h), nil
	case "cm", "centimeters":
		return axisscale.ViewportFromCentimeters(w, h), nil
	default:
		return axisscale.Viewport{}, fmt.Errorf("viewport.units: unknown unit %q", c.Viewport.Units)
	}
}

func vec3(key string, vals []float64) (axisscale.Vec3, error) {
	if len(vals) != 3 {
		return axisscale.Vec3{}, fmt.Errorf("%s: want 3 values, got %d", key, len(vals))
	}
	return axisscale.V3(vals[0], vals[1], vals[2]), nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
