// Package config loads the device configuration. Flags provide the
// defaults; values present in config.yaml override them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type GridCfg struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type StripCfg struct {
	Driver     string  `yaml:"driver"` // "spi" | "term" | "sim"
	Dev        string  `yaml:"dev"`    // e.g. /dev/spidev0.0, empty = first
	SpeedHz    int     `yaml:"speed_hz"`
	Serpentine bool    `yaml:"serpentine"`
	Brightness float64 `yaml:"brightness"`
}

type DisplayCfg struct {
	Driver string `yaml:"driver"` // "oled" | "log"
	I2CBus string `yaml:"i2c_bus"`
}

type InputCfg struct {
	PinA       string `yaml:"pin_a"`
	PinB       string `yaml:"pin_b"`
	PinButton  string `yaml:"pin_button"`
	DebounceMs int    `yaml:"debounce_ms"`
}

type HTTPCfg struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// WifiCfg and OTACfg only exist at the interface boundary: connectivity
// and remote update are brought up outside the effect core.
type WifiCfg struct {
	SSID     string `yaml:"ssid"`
	Password string `yaml:"password"`
}

type OTACfg struct {
	Password string `yaml:"password"`
}

type Config struct {
	Grid     GridCfg    `yaml:"grid"`
	Strip    StripCfg   `yaml:"strip"`
	Display  DisplayCfg `yaml:"display"`
	Input    InputCfg   `yaml:"input"`
	HTTP     HTTPCfg    `yaml:"http"`
	TickMs   int        `yaml:"tick_ms"`
	SelfTest bool       `yaml:"selftest"`
	Wifi     WifiCfg    `yaml:"wifi,omitempty"`
	OTA      OTACfg     `yaml:"ota,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
