// Package config loads the optional converter configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"atomrss/internal/feed"
)

// Config is the TOML configuration. Everything is optional; the zero
// value converts with the stock behavior.
//
//	[channel]
//	title = "House Feed"            # fallback when the feed has no title
//	link = "https://house.example/"
//	description = "House notes"
//
//	[output]
//	indent = "\t"
type Config struct {
	Channel ChannelConfig `toml:"channel"`
	Output  OutputConfig  `toml:"output"`
}

type ChannelConfig struct {
	Title       string `toml:"title"`
	Link        string `toml:"link"`
	Description string `toml:"description"`
}

type OutputConfig struct {
	Indent string `toml:"indent"`
}

// Load reads a config file. An empty path returns the zero config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Options maps the config onto transform options.
func (c *Config) Options() feed.Options {
	return feed.Options{
		Channel: feed.ChannelDefaults{
			Title:       c.Channel.Title,
			Link:        c.Channel.Link,
			Description: c.Channel.Description,
		},
		Indent: c.Output.Indent,
	}
}
