package ui

import (
	"context"
	"html/template"
	"io"

	"github.com/pkg/errors"
)

// Overlay is a dismissible modal container. It holds no state of its own:
// the parent passes the open flag along with the callbacks mutating it.
type Overlay struct {
	ID      string
	Label   string
	Open    bool
	OnOpen  func()
	OnClose func()
	// Dismiss is the endpoint the backdrop, the close button and the escape
	// key request when the user dismisses the overlay.
	Dismiss   Action
	CloseIcon template.HTML
	Content   Component
}

type overlayTemplateData struct {
	ID        string
	Label     string
	Open      bool
	Dismiss   Action
	CloseIcon template.HTML
	Content   template.HTML
}

func (o *Overlay) RequestOpen() {
	if o.OnOpen != nil {
		o.OnOpen()
	}
}

func (o *Overlay) RequestClose() {
	if o.OnClose != nil {
		o.OnClose()
	}
}

// Render implements Component. The content is only rendered while the
// overlay is open.
func (o *Overlay) Render(ctx context.Context, w io.Writer) error {
	data := overlayTemplateData{
		ID:        o.ID,
		Label:     o.Label,
		Open:      o.Open,
		Dismiss:   o.Dismiss,
		CloseIcon: o.CloseIcon,
	}

	if o.Open {
		content, err := RenderHTML(ctx, o.Content)
		if err != nil {
			return errors.WithStack(err)
		}

		data.Content = content
	}

	if err := components.ExecuteTemplate(w, "overlay", data); err != nil {
		return errors.Wrap(err, "could not render overlay")
	}

	return nil
}

var _ Component = &Overlay{}
