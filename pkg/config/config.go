package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const ConfigHelp = `
A render configuration is a TOML file of top-level keys. Every key is
optional; zero values fall back to the chosen scene's recommendation.
        scene: scene preset name, see -help for the list (default "random-spheres")
        width: output width in pixels; height follows the scene's aspect ratio
      samples: samples per pixel
        depth: maximum ray bounce depth
      workers: rows rendered concurrently (0 = one per CPU)
         seed: base seed for the per-row random samplers
       output: output file; the extension picks the format
               (png, jpg, jpeg, gif, bmp, tif, tiff)
  supersample: render at k times the size and downsample with Lanczos3 (1-8)
      texture: image file for the earth scene

Flags given explicitly on the command line override the file. Example:

  scene = "cornell-box"
  width = 600
  samples = 500
  output = "cornell.png"
`

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid render config")

// MaxSupersample bounds the supersampling factor
const MaxSupersample = 8

// RenderConfig holds everything needed to produce one image
type RenderConfig struct {
	Scene       string `toml:"scene"`
	Width       int    `toml:"width"`
	Samples     int    `toml:"samples"`
	Depth       int    `toml:"depth"`
	Workers     int    `toml:"workers"`
	Seed        int64  `toml:"seed"`
	Output      string `toml:"output"`
	Supersample int    `toml:"supersample"`
	Texture     string `toml:"texture"`
}

// Default returns the configuration used when no file or flags are given
func Default() RenderConfig {
	return RenderConfig{
		Scene:       "random-spheres",
		Seed:        42,
		Output:      "output.png",
		Supersample: 1,
		Texture:     "earthmap.jpg",
	}
}

// Load reads a TOML file on top of Default and validates the result
func Load(path string) (RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return RenderConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text on top of Default. Unknown keys are an error.
func Decode(data string) (RenderConfig, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return RenderConfig{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first field that cannot be rendered
func (c RenderConfig) Validate() error {
	switch {
	case c.Scene == "":
		return fmt.Errorf("%w: scene is required", ErrInvalidConfig)
	case c.Width < 0:
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidConfig, c.Width)
	case c.Samples < 0:
		return fmt.Errorf("%w: samples must not be negative, got %d", ErrInvalidConfig, c.Samples)
	case c.Depth < 0:
		return fmt.Errorf("%w: depth must not be negative, got %d", ErrInvalidConfig, c.Depth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	case c.Output == "":
		return fmt.Errorf("%w: output is required", ErrInvalidConfig)
	case c.Supersample < 1 || c.Supersample > MaxSupersample:
		return fmt.Errorf("%w: supersample must be in [1, %d], got %d", ErrInvalidConfig, MaxSupersample, c.Supersample)
	}
	return nil
}

// Encode writes the configuration as TOML
func (c RenderConfig) Encode(w io.Writer) error {
	var b bytes.Buffer
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return err
	}
	_, err := w.Write(b.Bytes())
	return err
}
