package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/regstorm/clipboard"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownProvider indicates an unrecognized clipboard.provider value.
	ErrUnknownProvider = errors.New("unknown clipboard provider")

	// ErrMissingCommand indicates a custom provider without commands.
	ErrMissingCommand = errors.New("custom clipboard provider needs copy-command and paste-command")
)

// Provider selection values for ClipboardConfig.Provider.
const (
	ProviderAuto   = "auto"
	ProviderMemory = "memory"
	ProviderNative = "native"
	ProviderCustom = "custom"
)

// Config is the register subsystem configuration.
type Config struct {
	Clipboard ClipboardConfig `toml:"clipboard"`
	Logging   LoggingConfig   `toml:"logging"`
}

// ClipboardConfig selects and parameterizes the clipboard provider.
type ClipboardConfig struct {
	// Provider selects the backend: auto, memory, native, or custom.
	Provider string `toml:"provider"`

	// CopyCommand and PasteCommand are the system clipboard command lines
	// for the custom provider.
	CopyCommand  string `toml:"copy-command"`
	PasteCommand string `toml:"paste-command"`

	// PrimaryCopyCommand and PrimaryPasteCommand optionally serve the
	// primary selection for the custom provider.
	PrimaryCopyCommand  string `toml:"primary-copy-command"`
	PrimaryPasteCommand string `toml:"primary-paste-command"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `toml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Clipboard: ClipboardConfig{Provider: ProviderAuto},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads configuration from path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes configuration from raw TOML, filling in defaults for
// anything unset.
func Parse(path string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	switch c.Clipboard.Provider {
	case "", ProviderAuto, ProviderMemory, ProviderNative:
	case ProviderCustom:
		if c.Clipboard.CopyCommand == "" || c.Clipboard.PasteCommand == "" {
			return ErrMissingCommand
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Clipboard.Provider)
	}
	return nil
}

// BuildProvider turns a clipboard configuration into a provider.
func BuildProvider(c ClipboardConfig) (clipboard.Provider, error) {
	switch c.Provider {
	case "", ProviderAuto:
		return clipboard.DetectProvider(), nil
	case ProviderMemory:
		return clipboard.NewMemoryProvider(), nil
	case ProviderNative:
		native := clipboard.NewNativeProvider()
		if !native.Available() {
			return nil, clipboard.ErrNotAvailable
		}
		return native, nil
	case ProviderCustom:
		if c.CopyCommand == "" || c.PasteCommand == "" {
			return nil, ErrMissingCommand
		}
		p, err := clipboard.NewCommandProvider("custom",
			strings.Fields(c.CopyCommand),
			strings.Fields(c.PasteCommand))
		if err != nil {
			return nil, err
		}
		if c.PrimaryCopyCommand != "" || c.PrimaryPasteCommand != "" {
			err := p.AddKind(clipboard.KindSelection,
				strings.Fields(c.PrimaryCopyCommand),
				strings.Fields(c.PrimaryPasteCommand))
			if err != nil {
				return nil, err
			}
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
}
