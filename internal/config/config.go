// Package config loads settings from flags, PADMAPPER_* environment variables
// and an optional padmapper.{yaml,toml,json} file, in that order of priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultVendorID and DefaultProductID select a DualShock 4 (CUH-ZCT1).
	DefaultVendorID  = 0x054c
	DefaultProductID = 0x05c4
)

type Device struct {
	VendorID  uint16 `mapstructure:"vid"`
	ProductID uint16 `mapstructure:"pid"`
}

type Loop struct {
	Interval time.Duration `mapstructure:"interval"`
}

type Repeat struct {
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	Interval     time.Duration `mapstructure:"interval"`
}

type Mapping struct {
	StickDeadzone      float64 `mapstructure:"stick_deadzone"`
	TriggerThreshold   uint8   `mapstructure:"trigger_threshold"`
	PointerDeadzone    float64 `mapstructure:"pointer_deadzone"`
	PointerSensitivity float64 `mapstructure:"pointer_sensitivity"`
}

type Keyboard struct {
	MoveDelay time.Duration `mapstructure:"move_delay"`
	Deadzone  float64       `mapstructure:"deadzone"`
}

type HTTP struct {
	Addr string `mapstructure:"addr"`
}

type Tray struct {
	Enabled bool `mapstructure:"enabled"`
}

type Display struct {
	Terminal bool `mapstructure:"terminal"`
}

type Sink struct {
	DryRun bool `mapstructure:"dry_run"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	Device   Device   `mapstructure:"device"`
	Loop     Loop     `mapstructure:"loop"`
	Repeat   Repeat   `mapstructure:"repeat"`
	Mapping  Mapping  `mapstructure:"mapping"`
	Keyboard Keyboard `mapstructure:"keyboard"`
	HTTP     HTTP     `mapstructure:"http"`
	Tray     Tray     `mapstructure:"tray"`
	Display  Display  `mapstructure:"display"`
	Sink     Sink     `mapstructure:"sink"`
	Log      Log      `mapstructure:"log"`

	// ConfigFile is the file that was read, if any.
	ConfigFile string `mapstructure:"-"`
}

// ErrHelp is returned when the user asked for usage.
var ErrHelp = pflag.ErrHelp

// flagKeys binds flag names to config keys.
var flagKeys = map[string]string{
	"vid":                 "device.vid",
	"pid":                 "device.pid",
	"interval":            "loop.interval",
	"repeat-delay":        "repeat.initial_delay",
	"repeat-interval":     "repeat.interval",
	"stick-deadzone":      "mapping.stick_deadzone",
	"trigger-threshold":   "mapping.trigger_threshold",
	"pointer-deadzone":    "mapping.pointer_deadzone",
	"pointer-sensitivity": "mapping.pointer_sensitivity",
	"keyboard-move-delay": "keyboard.move_delay",
	"keyboard-deadzone":   "keyboard.deadzone",
	"http":                "http.addr",
	"tray":                "tray.enabled",
	"terminal":            "display.terminal",
	"dry-run":             "sink.dry_run",
	"log-level":           "log.level",
	"log-file":            "log.file",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("padmapper", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.Uint16("vid", DefaultVendorID, "controller USB vendor id")
	fs.Uint16("pid", DefaultProductID, "controller USB product id")
	fs.Duration("interval", 16*time.Millisecond, "processing loop interval")
	fs.Duration("repeat-delay", 300*time.Millisecond, "delay before a held key starts repeating")
	fs.Duration("repeat-interval", 70*time.Millisecond, "interval between repeats")
	fs.Float64("stick-deadzone", 0.25, "left stick deadzone for WASD")
	fs.Uint8("trigger-threshold", 50, "raw trigger level that holds a mouse button")
	fs.Float64("pointer-deadzone", 0.12, "right stick deadzone for pointer motion")
	fs.Float64("pointer-sensitivity", 14, "pointer pixels per cycle at full deflection")
	fs.Duration("keyboard-move-delay", 150*time.Millisecond, "minimum time between virtual keyboard moves")
	fs.Float64("keyboard-deadzone", 0.35, "left stick deadzone for the virtual keyboard")
	fs.String("http", "127.0.0.1:8080", "status page address, empty disables it")
	fs.Bool("tray", false, "show a system tray menu")
	fs.Bool("terminal", true, "draw the terminal display")
	fs.Bool("dry-run", false, "log synthetic input instead of injecting it")
	fs.String("log-level", "info", "log level")
	fs.String("log-file", "", "write logs to this file instead of stderr")
	fs.StringP("config", "c", "", "config file")
	return fs
}

// Load parses args and merges them with the environment and config file.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	v.SetEnvPrefix("padmapper")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, _ := fs.GetString("config")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("padmapper")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "padmapper"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that would make the mapping meaningless.
func (c *Config) Validate() error {
	var errs []error
	if c.Loop.Interval <= 0 {
		errs = append(errs, errors.New("loop.interval must be positive"))
	}
	if c.Repeat.InitialDelay <= 0 || c.Repeat.Interval <= 0 {
		errs = append(errs, errors.New("repeat delays must be positive"))
	}
	if c.Keyboard.MoveDelay < 0 {
		errs = append(errs, errors.New("keyboard.move_delay must not be negative"))
	}
	for name, dz := range map[string]float64{
		"mapping.stick_deadzone":   c.Mapping.StickDeadzone,
		"mapping.pointer_deadzone": c.Mapping.PointerDeadzone,
		"keyboard.deadzone":        c.Keyboard.Deadzone,
	} {
		if dz < 0 || dz >= 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1), got %v", name, dz))
		}
	}
	if c.Mapping.PointerSensitivity <= 0 {
		errs = append(errs, errors.New("mapping.pointer_sensitivity must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Usage returns the flag help text.
func Usage() string {
	return newFlagSet().FlagUsages()
}
