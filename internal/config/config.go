package config

import (
	"bytes"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type Config struct {
	Logger    Logger    `yaml:"logger"`
	HTTP      HTTP      `yaml:"http"`
	UI        UI        `yaml:"ui"`
	Icons     Icons     `yaml:"icons"`
	RateLimit RateLimit `yaml:"rateLimit"`
	Debug     Debug     `yaml:"debug"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Logger:    NewDefaultLoggerConfig(),
		HTTP:      NewDefaultHTTPConfig(),
		UI:        NewDefaultUIConfig(),
		Icons:     NewDefaultIconsConfig(),
		RateLimit: NewDefaultRateLimitConfig(),
		Debug:     NewDefaultDebugConfig(),
	}
}

// Interpolate round-trips the configuration through its YAML form so that
// every ${VAR} reference of the defaults gets expanded.
func Interpolate(conf *Config) error {
	var buff bytes.Buffer

	if err := Dump(&buff, conf); err != nil {
		return errors.WithStack(err)
	}

	if err := Load(&buff, conf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func LoadFile(path string, conf *Config) error {
	file, err := os.OpenFile(path, os.O_RDONLY, os.ModePerm)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	if err := Load(file, conf); err != nil {
		return errors.Wrapf(err, "could not load '%s'", path)
	}

	return nil
}

func Load(r io.Reader, conf *Config) error {
	decoder := yaml.NewDecoder(r)

	if err := decoder.Decode(conf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var sections = map[string]yaml.CommentMap{
	"$.logger":    NewLoggerConfigCommentMap(),
	"$.http":      NewHTTPConfigCommentMap(),
	"$.ui":        NewUIConfigCommentMap(),
	"$.icons":     NewIconsConfigCommentMap(),
	"$.rateLimit": NewRateLimitConfigCommentMap(),
	"$.debug":     NewDebugConfigCommentMap(),
}

func Dump(w io.Writer, conf *Config) error {
	configComments := yaml.CommentMap{}
	for configSelector, sectionComments := range sections {
		for sectionSelector, sectionComments := range sectionComments {
			configComments[configSelector+sectionSelector] = sectionComments
		}
	}

	encoder := yaml.NewEncoder(w, yaml.WithComment(configComments))
	defer encoder.Close()

	if err := encoder.Encode(conf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
