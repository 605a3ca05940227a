package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address           InterpolatedString    `yaml:"address"`
	BaseURL           InterpolatedString    `yaml:"baseUrl"`
	ReadHeaderTimeout *InterpolatedDuration `yaml:"readHeaderTimeout"`
	ShutdownTimeout   *InterpolatedDuration `yaml:"shutdownTimeout"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address:           "${TUBE_HTTP_ADDRESS:-:8080}",
		BaseURL:           "${TUBE_HTTP_BASE_URL:-http://localhost:8080}",
		ReadHeaderTimeout: NewInterpolatedDuration(10 * time.Second),
		ShutdownTimeout:   NewInterpolatedDuration(15 * time.Second),
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                   []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":           []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":           []*yaml.Comment{yaml.HeadComment(" Public base URL of the front end")},
		".readHeaderTimeout": []*yaml.Comment{yaml.HeadComment(" Maximum duration allowed to read request headers")},
		".shutdownTimeout":   []*yaml.Comment{yaml.HeadComment(" Grace period given to in-flight requests on shutdown")},
	}
}
