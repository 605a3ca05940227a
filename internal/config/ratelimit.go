package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type RateLimit struct {
	Rate        InterpolatedFloat     `yaml:"rate"`
	Burst       InterpolatedInt       `yaml:"burst"`
	IdleTimeout *InterpolatedDuration `yaml:"idleTimeout"`
}

func NewDefaultRateLimitConfig() RateLimit {
	return RateLimit{
		Rate:        10,
		Burst:       20,
		IdleTimeout: NewInterpolatedDuration(5 * time.Minute),
	}
}

func NewRateLimitConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":             []*yaml.Comment{yaml.HeadComment(" Per client rate limiting of component fragments")},
		".rate":        []*yaml.Comment{yaml.HeadComment(" Sustained requests per second")},
		".burst":       []*yaml.Comment{yaml.HeadComment(" Maximum burst size")},
		".idleTimeout": []*yaml.Comment{yaml.HeadComment(" Delay after which a silent client is forgotten")},
	}
}
