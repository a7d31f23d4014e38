package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "mozzart.yaml"

type Config struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	Octave   int    `yaml:"octave"`
	Midi     struct {
		Channel  uint8  `yaml:"channel"`
		Velocity uint8  `yaml:"velocity"`
		Duration uint32 `yaml:"duration"`
	} `yaml:"midi"`
}

func Default() Config {
	var c Config
	c.Addr = ":8080"
	c.LogLevel = "info"
	c.Octave = 4
	c.Midi.Velocity = 100
	c.Midi.Duration = 480
	return c
}

func GetConfigPath() string {
	path := os.Getenv("MOZZART_CONFIG")
	if path != "" {
		return path
	}
	return DefaultPath
}

// Load layers defaults, the YAML file at path and MOZZART_* environment
// variables. An empty path falls back to GetConfigPath, and a missing file
// is only an error when the path was asked for explicitly.
func Load(path string) (Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = GetConfigPath()
		explicit = os.Getenv("MOZZART_CONFIG") != ""
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, errors.Wrapf(err, "could not parse config %v", path)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return c, errors.Wrapf(err, "could not read config %v", path)
	}

	if err := applyEnv(&c); err != nil {
		return c, err
	}
	return c, nil
}

func applyEnv(c *Config) error {
	if addr := os.Getenv("MOZZART_ADDR"); addr != "" {
		c.Addr = addr
	}
	if level := os.Getenv("MOZZART_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if octave := os.Getenv("MOZZART_OCTAVE"); octave != "" {
		n, err := strconv.Atoi(octave)
		if err != nil {
			return errors.Wrap(err, "MOZZART_OCTAVE")
		}
		c.Octave = n
	}
	return nil
}
