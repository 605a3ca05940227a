package config

import "github.com/goccy/go-yaml"

type UI struct {
	Brand             InterpolatedString `yaml:"brand"`
	AvatarInitial     InterpolatedString `yaml:"avatarInitial"`
	SearchPlaceholder InterpolatedString `yaml:"searchPlaceholder"`
	RememberMe        InterpolatedBool   `yaml:"rememberMe"`
}

func NewDefaultUIConfig() UI {
	return UI{
		Brand:             "${TUBE_UI_BRAND:-PrometheusTube}",
		AvatarInitial:     "${TUBE_UI_AVATAR_INITIAL:-N}",
		SearchPlaceholder: "${TUBE_UI_SEARCH_PLACEHOLDER:-Search}",
		RememberMe:        true,
	}
}

func NewUIConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                   []*yaml.Comment{yaml.HeadComment(" User interface configuration")},
		".brand":             []*yaml.Comment{yaml.HeadComment(" Label of the brand link displayed in the navigation bar")},
		".avatarInitial":     []*yaml.Comment{yaml.HeadComment(" Letter displayed inside the avatar control")},
		".searchPlaceholder": []*yaml.Comment{yaml.HeadComment(" Placeholder of the search input")},
		".rememberMe":        []*yaml.Comment{yaml.HeadComment(" Initial state of the login form's 'Remember me' toggle")},
	}
}
