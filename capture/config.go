package capture

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arloliu/sbeview/format"
)

// Config holds the writer settings that are usually kept in a file.
type Config struct {
	Compression    format.CompressionType
	MaxMessages    int
	MaxPayloadSize int
	MaxMessageSize int
}

type fileConfig struct {
	Compression    string `toml:"compression"`
	MaxMessages    int    `toml:"max_messages"`
	MaxPayloadSize int    `toml:"max_payload_size"`
	MaxMessageSize int    `toml:"max_message_size"`
}

// DefaultConfig returns the settings NewWriter uses without options.
func DefaultConfig() Config {
	return Config{
		Compression:    format.CompressionZstd,
		MaxMessages:    DefaultMaxMessages,
		MaxPayloadSize: DefaultMaxPayloadSize,
		MaxMessageSize: DefaultMaxMessageSize,
	}
}

// LoadConfig reads a TOML file. Keys that are absent keep their default value.
//
//	compression = "s2"        # none, zstd, s2 or lz4
//	max_messages = 10000
//	max_payload_size = 8388608
//	max_message_size = 1024
func LoadConfig(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load capture config: %w", err)
	}

	return raw.resolve(meta)
}

// ParseConfig is LoadConfig for TOML text.
func ParseConfig(text string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse capture config: %w", err)
	}

	return raw.resolve(meta)
}

func (raw fileConfig) resolve(meta toml.MetaData) (Config, error) {
	cfg := DefaultConfig()

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown capture config key %q", undecoded[0].String())
	}

	if meta.IsDefined("compression") {
		comp, ok := format.ParseCompression(strings.TrimSpace(raw.Compression))
		if !ok {
			return Config{}, fmt.Errorf("parse compression: unknown codec %q", raw.Compression)
		}
		cfg.Compression = comp
	}
	if meta.IsDefined("max_messages") {
		cfg.MaxMessages = raw.MaxMessages
	}
	if meta.IsDefined("max_payload_size") {
		cfg.MaxPayloadSize = raw.MaxPayloadSize
	}
	if meta.IsDefined("max_message_size") {
		cfg.MaxMessageSize = raw.MaxMessageSize
	}

	return cfg, nil
}

// Options converts the configuration into writer options. Values are validated when the
// options are applied by NewWriter.
func (c Config) Options() []Option {
	return []Option{
		WithCompression(c.Compression),
		WithMaxMessages(c.MaxMessages),
		WithMaxPayloadSize(c.MaxPayloadSize),
		WithMaxMessageSize(c.MaxMessageSize),
	}
}
