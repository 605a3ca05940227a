package ui

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// Component is a piece of markup rendered server side.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

type ComponentFunc func(ctx context.Context, w io.Writer) error

func (fn ComponentFunc) Render(ctx context.Context, w io.Writer) error {
	return fn(ctx, w)
}

// RenderHTML renders the component so it can be embedded into a page
// template.
func RenderHTML(ctx context.Context, c Component) (template.HTML, error) {
	if c == nil {
		return "", nil
	}

	var buff bytes.Buffer

	if err := c.Render(ctx, &buff); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}

// NewID returns a DOM id unique to a component instance.
func NewID(prefix string) string {
	return prefix + "-" + xid.New().String()
}

// Action binds a control to a server endpoint. The zero value leaves the
// control unbound: it is rendered but does nothing when used.
type Action struct {
	Method string
	URL    string
	// Target is the CSS selector of the element the response replaces.
	Target string
}

func (a Action) IsZero() bool {
	return a.URL == ""
}

// IsPost reports whether the action is sent with POST (GET otherwise).
func (a Action) IsPost() bool {
	return a.Method == "POST"
}

func GetAction(url string, target string) Action {
	return Action{Method: "GET", URL: url, Target: target}
}

func PostAction(url string, target string) Action {
	return Action{Method: "POST", URL: url, Target: target}
}
