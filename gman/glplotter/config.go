package glplotter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
)

type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	ClearColor Color  `toml:"clear_color"`
	VSync      bool   `toml:"vsync"`
	// Frames closes the window after that many presented frames; 0 runs
	// until the user closes it.
	Frames     int    `toml:"frames"`
	Screenshot string `toml:"screenshot"`
	Hidden     bool   `toml:"hidden"`
}

func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     800,
		Title:      "glboot",
		ClearColor: Color{R: 0.1, G: 0.15, B: 0.2, A: 1.0},
		VSync:      true,
	}
}

// LoadConfig decodes a TOML file over cfg. Keys absent from the file keep
// their current values; unknown keys are an error.
func LoadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("invalid frame limit %d", c.Frames)
	}
	return nil
}

// Color is a normalized RGBA color.
type Color struct {
	R, G, B, A float32
}

var errColorSyntax = errors.New("want a color name, #rrggbb[aa] or r,g,b[,a]")

// ParseColor accepts a CSS/SVG color name ("darkslategray"), a hex triplet or
// quad ("#1a2633", "#1a2633ff"), or comma separated components in [0, 1]
// ("0.1,0.15,0.2" or "0.1,0.15,0.2,1").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("color %q: %w", s, errColorSyntax)
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{
			R: float32(rgba.R) / 255,
			G: float32(rgba.G) / 255,
			B: float32(rgba.B) / 255,
			A: float32(rgba.A) / 255,
		}, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("color %q: %w", s, errColorSyntax)
	}
	v := [4]float32{3: 1}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, errColorSyntax)
		}
		if math.IsNaN(f) || f < 0 || f > 1 {
			return Color{}, fmt.Errorf("color %q: component %v out of range [0, 1]", s, f)
		}
		v[i] = float32(f)
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func parseHexColor(s string) (Color, error) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: %w", s, errColorSyntax)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, errColorSyntax)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return Color{
		R: float32(n>>24&0xff) / 255,
		G: float32(n>>16&0xff) / 255,
		B: float32(n>>8&0xff) / 255,
		A: float32(n&0xff) / 255,
	}, nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Color) String() string {
	f := func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
	return f(c.R) + "," + f(c.G) + "," + f(c.B) + "," + f(c.A)
}
