package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/wricardo/amazeing/maze/engine"
)

var (
	ErrMissingKey    = errors.New("missing required key")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrCannotOpen    = errors.New("cannot open config file")
)

// Keys read from a configuration file.
const (
	KeyWidth      = "WIDTH"
	KeyHeight     = "HEIGHT"
	KeyEntry      = "ENTRY"
	KeyExit       = "EXIT"
	KeyOutputFile = "OUTPUT_FILE"
	KeyPerfect    = "PERFECT"
	KeySeed       = "SEED"
	KeyAnimate    = "ANIMATE"
	KeyAlgorithm  = "ALGORITHM"
	KeyOverlay    = "OVERLAY"
)

var requiredKeys = []string{KeyWidth, KeyHeight, KeyEntry, KeyExit, KeyOutputFile, KeyPerfect}

// Config is a validated maze configuration.
type Config struct {
	Width      int              `yaml:"width" validate:"gt=0,gte=10"`
	Height     int              `yaml:"height" validate:"gt=0,gte=10"`
	Entry      engine.Point     `yaml:"entry"`
	Exit       engine.Point     `yaml:"exit"`
	OutputFile string           `yaml:"output_file" validate:"required,startsalpha"`
	Perfect    bool             `yaml:"perfect"`
	Seed       *int64           `yaml:"seed,omitempty"`
	Animate    bool             `yaml:"animate"`
	Algorithm  engine.Algorithm `yaml:"algorithm" validate:"oneof=dfs prim"`
	Overlay    bool             `yaml:"overlay"`

	// Source is the file the configuration was read from, if any.
	Source string `yaml:"-"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("startsalpha", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		r := []rune(s)[0]
		return unicode.IsLetter(r)
	})
	return v
}

// Load reads a configuration file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as KEY=VALUE lines.
func Load(path string) (*Config, error) {
	values, err := readValues(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(values)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	return cfg, nil
}

func readValues(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCannotOpen, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCannotOpen, path)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		values := make(map[string]string, len(raw))
		for k, v := range raw {
			if v == nil {
				continue
			}
			values[strings.ToUpper(strings.TrimSpace(k))] = fmt.Sprint(v)
		}
		return values, nil
	default:
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid config line: %v", ErrInvalidConfig, err)
		}
		return values, nil
	}
}

// Parse converts raw key/value pairs into a validated Config.
func Parse(values map[string]string) (*Config, error) {
	get := func(key string) string {
		return strings.TrimSpace(values[key])
	}

	for _, key := range requiredKeys {
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
	}

	cfg := &Config{
		Animate:   true,
		Overlay:   true,
		Algorithm: engine.DFS,
	}

	var err error
	cfg.Width, err = strconv.Atoi(get(KeyWidth))
	if err != nil {
		return nil, invalid("WIDTH and HEIGHT must be integers")
	}
	cfg.Height, err = strconv.Atoi(get(KeyHeight))
	if err != nil {
		return nil, invalid("WIDTH and HEIGHT must be integers")
	}

	if cfg.Entry, err = parsePoint(get(KeyEntry)); err != nil {
		return nil, err
	}
	if cfg.Exit, err = parsePoint(get(KeyExit)); err != nil {
		return nil, err
	}

	if cfg.Perfect, err = parseBool(get(KeyPerfect)); err != nil {
		return nil, invalid("PERFECT must be True or False")
	}

	cfg.OutputFile = get(KeyOutputFile)

	if raw, ok := values[KeySeed]; ok && strings.TrimSpace(raw) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, invalid("SEED must be an integer")
		}
		cfg.Seed = &seed
	}

	if raw, ok := values[KeyAnimate]; ok {
		if cfg.Animate, err = parseBool(strings.TrimSpace(raw)); err != nil {
			return nil, invalid("the ANIMATE value must be true or false")
		}
	}

	if raw, ok := values[KeyOverlay]; ok {
		if cfg.Overlay, err = parseBool(strings.TrimSpace(raw)); err != nil {
			return nil, invalid("the OVERLAY value must be true or false")
		}
	}

	if raw, ok := values[KeyAlgorithm]; ok && strings.TrimSpace(raw) != "" {
		cfg.Algorithm = engine.Algorithm(strings.ToLower(strings.TrimSpace(raw)))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints, then the rules involving several fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return invalid(describe(verrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if !inBounds(c.Entry, c.Width, c.Height) {
		return invalid("the entry points are out of range")
	}
	if !inBounds(c.Exit, c.Width, c.Height) {
		return invalid("the exit points are out of range")
	}
	if c.Entry == c.Exit {
		return invalid("the entry point and exit cannot be at the same place")
	}
	return nil
}

// Values renders the configuration back into KEY=VALUE form.
func (c *Config) Values() map[string]string {
	values := map[string]string{
		KeyWidth:      strconv.Itoa(c.Width),
		KeyHeight:     strconv.Itoa(c.Height),
		KeyEntry:      c.Entry.String(),
		KeyExit:       c.Exit.String(),
		KeyOutputFile: c.OutputFile,
		KeyPerfect:    strconv.FormatBool(c.Perfect),
		KeyAnimate:    strconv.FormatBool(c.Animate),
		KeyAlgorithm:  string(c.Algorithm),
		KeyOverlay:    strconv.FormatBool(c.Overlay),
	}
	if c.Seed != nil {
		values[KeySeed] = strconv.FormatInt(*c.Seed, 10)
	}
	return values
}

// Save writes the configuration as a KEY=VALUE file.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return godotenv.Write(c.Values(), path)
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "Width", "Height":
		if fe.Tag() == "gt" {
			return "WIDTH and HEIGHT must be > 0"
		}
		return "the maze is too small to display the entire 42 pattern"
	case "OutputFile":
		if fe.Tag() == "required" {
			return "no output file has been set"
		}
		return "wrong file name (ex: maze.txt)"
	case "Algorithm":
		return fmt.Sprintf("ALGORITHM must be dfs or prim, got %q", fe.Value())
	}
	return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
}

func parsePoint(s string) (engine.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return engine.Point{}, invalid("ENTRY and EXIT must be in format x,y")
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return engine.Point{}, invalid("ENTRY and EXIT must be in format x,y")
	}
	return engine.Point{X: x, Y: y}, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

func inBounds(p engine.Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
}
