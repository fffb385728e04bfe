package config

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Frame source kinds.
const (
	SourceScreen = "screen"
	SourceImage  = "image"
)

// DefaultFileName is the config file looked up next to the executable.
const DefaultFileName = "config.json"

// Config holds runtime configuration for the frame loop and the spot editor.
// Fields may be loaded from a JSON file and overridden by SPOTMARKER_*
// environment variables (optionally read from a .env file).
type Config struct {
	Debug    bool `json:"debug"`
	DarkMode bool `json:"dark_mode"`

	// Zone persistence
	SpotsPath string `json:"spots_path"`

	// Frame source
	Source    string `json:"source"`
	ImagePath string `json:"image_path"`

	// Screen capture region; zero width or height captures the full screen.
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`

	// Frame loop and display
	TickMillis  int `json:"tick_ms"`
	DisplayMaxW int `json:"display_max_w"`
	DisplayMaxH int `json:"display_max_h"`

	// Alerting
	AlertMessage    string `json:"alert_message"`
	AlertCooldownMs int    `json:"alert_cooldown_ms"`

	// Metrics endpoint, e.g. ":9101". Empty disables it.
	MetricsAddr string `json:"metrics_addr"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		SpotsPath:       ExecutableDir("parking_spots.json"),
		Source:          SourceScreen,
		TickMillis:      33,
		DisplayMaxW:     1024,
		DisplayMaxH:     768,
		AlertMessage:    "Warning: parking spots occupied!",
		AlertCooldownMs: 3000,
	}
}

// ExecutableDir joins name onto the directory of the running program. It
// falls back to the working directory when the executable path is unknown.
func ExecutableDir(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

// Selection returns the configured capture rectangle (possibly empty).
func (c *Config) Selection() image.Rectangle {
	if c == nil || c.SelectionW <= 0 || c.SelectionH <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(c.SelectionX, c.SelectionY, c.SelectionX+c.SelectionW, c.SelectionY+c.SelectionH)
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if strings.TrimSpace(c.SpotsPath) == "" {
		c.SpotsPath = def.SpotsPath
	}
	switch c.Source {
	case SourceScreen, SourceImage:
	default:
		c.Source = SourceScreen
	}
	if c.Source == SourceImage && strings.TrimSpace(c.ImagePath) == "" {
		c.Source = SourceScreen
	}
	if c.SelectionW < 0 {
		c.SelectionW = 0
	}
	if c.SelectionH < 0 {
		c.SelectionH = 0
	}
	if c.TickMillis <= 0 {
		c.TickMillis = def.TickMillis
	}
	if c.DisplayMaxW < 100 {
		c.DisplayMaxW = 100
	}
	if c.DisplayMaxH < 100 {
		c.DisplayMaxH = 100
	}
	if strings.TrimSpace(c.AlertMessage) == "" {
		c.AlertMessage = def.AlertMessage
	}
	if c.AlertCooldownMs < 0 {
		c.AlertCooldownMs = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	defer func() {
		cfg.applyEnv()
		_ = cfg.Validate()
	}()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// LoadDotEnv reads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("SPOTMARKER_SPOTS_PATH"); ok {
		c.SpotsPath = v
	}
	if v, ok := os.LookupEnv("SPOTMARKER_SOURCE"); ok {
		c.Source = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("SPOTMARKER_IMAGE_PATH"); ok {
		c.ImagePath = v
	}
	if v, ok := os.LookupEnv("SPOTMARKER_METRICS_ADDR"); ok {
		c.MetricsAddr = v
	}
	if v, ok := os.LookupEnv("SPOTMARKER_DEBUG"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Debug = b
		}
	}
}
