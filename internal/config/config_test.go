package config

import (
	"path/filepath"
	"testing"
)

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	in := &Config{
		Grid:   GridCfg{Rows: 8, Cols: 32},
		Strip:  StripCfg{Driver: "spi", SpeedHz: 2500000, Serpentine: true, Brightness: 0.8},
		Input:  InputCfg{PinA: "GPIO17", PinB: "GPIO27", PinButton: "GPIO22", DebounceMs: 5},
		HTTP:   HTTPCfg{Enabled: true, Addr: ":8080"},
		TickMs: 1,
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
