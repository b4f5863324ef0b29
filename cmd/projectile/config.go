// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvtrace/canvas"
	"github.com/katalvlaran/lvtrace/tuple"
)

// Environment keys.
const (
	envWidth   = "LVTRACE_WIDTH"
	envHeight  = "LVTRACE_HEIGHT"
	envOutput  = "LVTRACE_OUTPUT"
	envSpeed   = "LVTRACE_SPEED"
	envGravity = "LVTRACE_GRAVITY"
	envWind    = "LVTRACE_WIND"
	envWorkers = "LVTRACE_WORKERS"
)

// envFileDepth is how many directories loadEnvFile climbs looking for .env.
const envFileDepth = 5

var (
	// ErrInvalidConfig is returned when a setting is malformed or out of range.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config drives one projectile render.
type Config struct {
	Width   int
	Height  int
	Output  string
	Speed   float64     // launch speed along (1, 1.8, 0)
	Gravity tuple.Tuple // vector
	Wind    tuple.Tuple // vector
	Workers int         // 0 = GOMAXPROCS
}

func defaultConfig() Config {
	return Config{
		Width:   900,
		Height:  550,
		Output:  "output.ppm",
		Speed:   11.25,
		Gravity: tuple.Vector(0, -0.1, 0),
		Wind:    tuple.Vector(-0.01, 0, 0),
	}
}

// lookupFunc resolves a key the way os.LookupEnv does.
type lookupFunc func(key string) (string, bool)

// loadConfig layers defaults, the nearest .env file, the process environment
// and finally the command-line flags in args.
func loadConfig(args []string, stderr io.Writer) (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	fileEnv, err := loadEnvFile(wd)
	if err != nil {
		return Config{}, err
	}

	cfg := defaultConfig()
	if err := cfg.applyEnv(chainLookup(os.LookupEnv, mapLookup(fileEnv))); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(args, stderr); err != nil {
		return Config{}, err
	}

	return cfg, cfg.validate()
}

// loadEnvFile walks up from dir looking for a .env file and parses the first
// one it finds. A missing file is not an error.
func loadEnvFile(dir string) (map[string]string, error) {
	for i := 0; i < envFileDepth; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			vals, err := godotenv.Read(path)
			if err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}

			return vals, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, nil
}

// chainLookup returns the first hit among fns.
func chainLookup(fns ...lookupFunc) lookupFunc {
	return func(key string) (string, bool) {
		for _, fn := range fns {
			if v, ok := fn(key); ok {
				return v, true
			}
		}

		return "", false
	}
}

func mapLookup(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]

		return v, ok
	}
}

func (c *Config) applyEnv(lookup lookupFunc) error {
	if v, ok := lookup(envWidth); ok {
		n, err := parseInt(envWidth, v)
		if err != nil {
			return err
		}
		c.Width = n
	}
	if v, ok := lookup(envHeight); ok {
		n, err := parseInt(envHeight, v)
		if err != nil {
			return err
		}
		c.Height = n
	}
	if v, ok := lookup(envOutput); ok {
		c.Output = strings.TrimSpace(v)
	}
	if v, ok := lookup(envSpeed); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", envSpeed, v, ErrInvalidConfig)
		}
		c.Speed = f
	}
	if v, ok := lookup(envGravity); ok {
		t, err := parseVector(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envGravity, err)
		}
		c.Gravity = t
	}
	if v, ok := lookup(envWind); ok {
		t, err := parseVector(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envWind, err)
		}
		c.Wind = t
	}
	if v, ok := lookup(envWorkers); ok {
		n, err := parseInt(envWorkers, v)
		if err != nil {
			return err
		}
		c.Workers = n
	}

	return nil
}

func (c *Config) applyFlags(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("projectile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.StringVar(&c.Output, "o", c.Output, "output file (.ppm, .png, .bmp, .tif)")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "launch speed")
	gravity := &vectorFlag{name: "gravity", dst: &c.Gravity}
	wind := &vectorFlag{name: "wind", dst: &c.Wind}
	fs.Var(gravity, gravity.name, "gravity vector x,y,z")
	fs.Var(wind, wind.name, "wind vector x,y,z")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers (0 = GOMAXPROCS)")

	if err := fs.Parse(args); err != nil {
		// flag formats Set errors with %v; hand back the original chain.
		for _, v := range []*vectorFlag{gravity, wind} {
			if v.err != nil {
				return v.err
			}
		}

		return err
	}

	return nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	if c.Speed < 0 {
		return fmt.Errorf("speed %g: %w", c.Speed, ErrInvalidConfig)
	}
	if _, err := canvas.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("output %q: %w: %w", c.Output, ErrInvalidConfig, err)
	}

	return nil
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidConfig)
	}

	return n, nil
}

// parseVector reads "x,y,z" into a vector tuple.
func parseVector(s string) (tuple.Tuple, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return tuple.Tuple{}, fmt.Errorf("%q: want x,y,z: %w", s, ErrInvalidConfig)
	}
	var xyz [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return tuple.Tuple{}, fmt.Errorf("%q: %w", s, ErrInvalidConfig)
		}
		xyz[i] = f
	}

	return tuple.Vector(xyz[0], xyz[1], xyz[2]), nil
}

// vectorFlag adapts a vector tuple to flag.Value and keeps the last
// parse error so it survives flag's own wrapping.
type vectorFlag struct {
	name string
	dst  *tuple.Tuple
	err  error
}

func (v *vectorFlag) String() string {
	if v == nil || v.dst == nil {
		return ""
	}

	return fmt.Sprintf("%g,%g,%g", v.dst.X, v.dst.Y, v.dst.Z)
}

func (v *vectorFlag) Set(s string) error {
	t, err := parseVector(s)
	if err != nil {
		v.err = fmt.Errorf("-%s: %w", v.name, err)
		return err
	}
	*v.dst = t

	return nil
}
