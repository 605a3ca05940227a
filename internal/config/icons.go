package config

import (
	"fmt"

	"github.com/bornholm/prometheustube/internal/ui/icon"
	"github.com/bornholm/prometheustube/internal/ui/icon/dir"
	"github.com/bornholm/prometheustube/internal/ui/icon/embedded"
	"github.com/goccy/go-yaml"
)

type Icons struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultIconsConfig() Icons {
	return Icons{
		Type:    InterpolatedString(fmt.Sprintf("${TUBE_ICONS_TYPE:-%s}", embedded.Type)),
		Options: &InterpolatedMap{Data: map[string]any{}},
	}
}

func NewIconsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":      []*yaml.Comment{yaml.HeadComment(" Icon assets configuration")},
		".type": []*yaml.Comment{yaml.HeadComment(" Icon provider type", fmt.Sprintf(" Available: %v", icon.Registered()))},
		".options": []*yaml.Comment{
			yaml.HeadComment(" Icon provider options"),
			yaml.FootComment(
				fmt.Sprintf("'%s' provider", dir.Type),
				"options:",
				"  dir: ./icons # directory of <name>.svg files overriding the built-in glyphs",
			),
		},
	}
}
