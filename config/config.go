package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/logbus/event"
	"github.com/dshills/logbus/logger"
	"github.com/dshills/logbus/style"
)

// File is the TOML configuration surface an embedding application can
// expose for its loggers and buses. All fields are optional; absent
// fields leave the library defaults in place.
type File struct {
	Logger LoggerSection `toml:"logger"`
	Bus    BusSection    `toml:"bus"`
}

// LoggerSection tunes logger construction.
type LoggerSection struct {
	ClearOnInit   *bool `toml:"clear_on_init"`
	UseTimestamps *bool `toml:"use_timestamps"`
	Colors        *bool `toml:"colors"`
}

// BusSection tunes bus construction.
type BusSection struct {
	Debug             *bool `toml:"debug"`
	WarnOnNoListeners *bool `toml:"warn_on_no_listeners"`
	CatchErrors       *bool `toml:"catch_errors"`
	MaxListeners      *int  `toml:"max_listeners"`
}

// Load reads a TOML configuration file. A missing file is not an error
// and yields an empty File.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &f, nil
}

// LoggerOptions translates the logger section into construction options.
func (f *File) LoggerOptions() []logger.Option {
	var opts []logger.Option
	if f.Logger.ClearOnInit != nil {
		opts = append(opts, logger.WithClearOnInit(*f.Logger.ClearOnInit))
	}
	if f.Logger.UseTimestamps != nil {
		opts = append(opts, logger.WithTimestamps(*f.Logger.UseTimestamps))
	}
	return opts
}

// BusOptions translates the bus section into construction options.
func (f *File) BusOptions() []event.Option {
	var opts []event.Option
	if f.Bus.Debug != nil {
		opts = append(opts, event.WithDebug(*f.Bus.Debug))
	}
	if f.Bus.WarnOnNoListeners != nil {
		opts = append(opts, event.WithWarnOnNoListeners(*f.Bus.WarnOnNoListeners))
	}
	if f.Bus.CatchErrors != nil {
		opts = append(opts, event.WithCatchErrors(*f.Bus.CatchErrors))
	}
	if f.Bus.MaxListeners != nil {
		opts = append(opts, event.WithMaxListeners(*f.Bus.MaxListeners))
	}
	return opts
}

// ApplyStyle applies the process-wide color setting, if present.
func (f *File) ApplyStyle() {
	if f.Logger.Colors != nil {
		style.ForceColors(*f.Logger.Colors)
	}
}
