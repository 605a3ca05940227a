package ui

import (
	"context"
	"html/template"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bornholm/prometheustube/internal/ui/icon"
	"github.com/bornholm/prometheustube/internal/ui/icon/embedded"
	"github.com/pkg/errors"
)

var ErrUnknownEvent = errors.New("unknown event")

const DefaultAvatarInitial = "N"

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	switch s {
	case ModalOpen:
		return "open"
	default:
		return "closed"
	}
}

type Event string

const (
	EventAvatarClick  Event = "avatar-click"
	EventModalDismiss Event = "modal-dismiss"
)

func ParseEvent(raw string) (Event, error) {
	switch e := Event(raw); e {
	case EventAvatarClick, EventModalDismiss:
		return e, nil
	default:
		return "", errors.Wrapf(ErrUnknownEvent, "'%s'", raw)
	}
}

type NavigationBarOptions struct {
	ID                string
	BrandLabel        string
	BrandURL          string
	SearchPlaceholder string
	Search            Action
	Notifications     Action
	AvatarInitial     string
	Avatar            Action
	Dismiss           Action
	ModalState        ModalState
	Icons             icon.Provider
	LoginForm         []LoginFormOptionFunc
}

type NavigationBarOptionFunc func(opts *NavigationBarOptions)

func NewNavigationBarOptions(funcs ...NavigationBarOptionFunc) *NavigationBarOptions {
	opts := &NavigationBarOptions{
		ID:                "navbar",
		BrandLabel:        "PrometheusTube",
		BrandURL:          "/",
		SearchPlaceholder: "Search",
		AvatarInitial:     DefaultAvatarInitial,
		ModalState:        ModalClosed,
		LoginForm:         make([]LoginFormOptionFunc, 0),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	if opts.Icons == nil {
		opts.Icons = embedded.NewProvider()
	}

	return opts
}

func WithNavigationBarID(id string) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.ID = id
	}
}

func WithBrand(label string, url string) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.BrandLabel = label
		opts.BrandURL = url
	}
}

// WithSearch sets the search input placeholder. The input only submits
// queries when action is not the zero Action.
func WithSearch(placeholder string, action Action) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.SearchPlaceholder = placeholder
		opts.Search = action
	}
}

// WithNotifications turns the decorative bell into a link.
func WithNotifications(action Action) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.Notifications = action
	}
}

// WithAvatar sets the avatar letter and the endpoint receiving avatar clicks.
func WithAvatar(initial string, action Action) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.AvatarInitial = initial
		opts.Avatar = action
	}
}

func WithAvatarInitial(initial string) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.AvatarInitial = initial
	}
}

// WithDismiss sets the endpoint receiving the login overlay dismissals.
func WithDismiss(action Action) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.Dismiss = action
	}
}

func WithModalState(state ModalState) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.ModalState = state
	}
}

func WithIcons(provider icon.Provider) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.Icons = provider
	}
}

func WithLoginForm(funcs ...LoginFormOptionFunc) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.LoginForm = append(opts.LoginForm, funcs...)
	}
}

// NavigationBar is the page header. It owns the visibility of the login
// overlay: closed initially, opened by a click on the avatar and closed
// again when the overlay is dismissed.
type NavigationBar struct {
	opts  *NavigationBarOptions
	modal ModalState
}

type navbarTemplateData struct {
	ID                string
	BrandLabel        string
	BrandURL          string
	SearchPlaceholder string
	Search            Action
	SearchIcon        template.HTML
	Notifications     Action
	BellIcon          template.HTML
	ModalState        ModalState
	Avatar            template.HTML
	Overlay           template.HTML
}

type avatarTemplateData struct {
	ID        string
	Initial   string
	Action    Action
	OverlayID string
	ModalOpen bool
	OutOfBand bool
}

// avatarLetter returns the upper-cased first character of the initial.
func avatarLetter(initial string) string {
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(initial))
	if size == 0 || r == utf8.RuneError {
		return DefaultAvatarInitial
	}

	return string(unicode.ToUpper(r))
}

func (n *NavigationBar) ModalState() ModalState {
	return n.modal
}

func (n *NavigationBar) IsModalOpen() bool {
	return n.modal == ModalOpen
}

// OpenModal shows the login overlay. It is a no-op when already open.
func (n *NavigationBar) OpenModal() {
	n.modal = ModalOpen
}

// CloseModal hides the login overlay. It is a no-op when already closed.
func (n *NavigationBar) CloseModal() {
	n.modal = ModalClosed
}

func (n *NavigationBar) HandleEvent(e Event) error {
	switch e {
	case EventAvatarClick:
		n.Overlay().RequestOpen()
	case EventModalDismiss:
		n.Overlay().RequestClose()
	default:
		return errors.Wrapf(ErrUnknownEvent, "'%s'", e)
	}

	return nil
}

func (n *NavigationBar) OverlayID() string {
	return n.opts.ID + "-login-modal"
}

func (n *NavigationBar) AvatarID() string {
	return n.opts.ID + "-avatar"
}

// Overlay returns the login overlay bound to the navbar's current state. A
// new login form is mounted each time the overlay is built open.
func (n *NavigationBar) Overlay() *Overlay {
	overlay := &Overlay{
		ID:      n.OverlayID(),
		Label:   "Login",
		Open:    n.IsModalOpen(),
		OnOpen:  n.OpenModal,
		OnClose: n.CloseModal,
		Dismiss: n.opts.Dismiss,
	}

	if overlay.Open {
		overlay.Content = NewLoginForm(n.opts.LoginForm...)
	}

	return overlay
}

// RenderOverlay renders the login overlay alone, as swapped in place by the
// avatar and dismiss actions.
func (n *NavigationBar) RenderOverlay(ctx context.Context, w io.Writer) error {
	overlay := n.Overlay()

	closeIcon, err := n.opts.Icons.Icon(icon.XMark)
	if err != nil {
		return errors.WithStack(err)
	}

	overlay.CloseIcon = closeIcon

	if err := overlay.Render(ctx, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// RenderAvatar renders the avatar control alone. When outOfBand is set the
// control is flagged for an HTMX out-of-band swap, so that it can accompany
// the overlay fragment and keep its expanded state in sync.
func (n *NavigationBar) RenderAvatar(ctx context.Context, w io.Writer, outOfBand bool) error {
	data := avatarTemplateData{
		ID:        n.AvatarID(),
		Initial:   avatarLetter(n.opts.AvatarInitial),
		Action:    n.opts.Avatar,
		OverlayID: n.OverlayID(),
		ModalOpen: n.IsModalOpen(),
		OutOfBand: outOfBand,
	}

	if err := components.ExecuteTemplate(w, "navbar-avatar", data); err != nil {
		return errors.Wrap(err, "could not render navigation bar avatar")
	}

	return nil
}

// Render implements Component.
func (n *NavigationBar) Render(ctx context.Context, w io.Writer) error {
	bellIcon, err := n.opts.Icons.Icon(icon.BellAlert)
	if err != nil {
		return errors.WithStack(err)
	}

	var searchIcon template.HTML
	if !n.opts.Search.IsZero() {
		searchIcon, err = n.opts.Icons.Icon(icon.MagnifyingGlass)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	avatar, err := RenderHTML(ctx, ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.RenderAvatar(ctx, w, false)
	}))
	if err != nil {
		return errors.WithStack(err)
	}

	overlay, err := RenderHTML(ctx, ComponentFunc(n.RenderOverlay))
	if err != nil {
		return errors.WithStack(err)
	}

	data := navbarTemplateData{
		ID:                n.opts.ID,
		BrandLabel:        n.opts.BrandLabel,
		BrandURL:          n.opts.BrandURL,
		SearchPlaceholder: n.opts.SearchPlaceholder,
		Search:            n.opts.Search,
		SearchIcon:        searchIcon,
		Notifications:     n.opts.Notifications,
		BellIcon:          bellIcon,
		ModalState:        n.modal,
		Avatar:            avatar,
		Overlay:           overlay,
	}

	if err := components.ExecuteTemplate(w, "navbar", data); err != nil {
		return errors.Wrap(err, "could not render navigation bar")
	}

	return nil
}

func NewNavigationBar(funcs ...NavigationBarOptionFunc) *NavigationBar {
	opts := NewNavigationBarOptions(funcs...)

	return &NavigationBar{
		opts:  opts,
		modal: opts.ModalState,
	}
}

var _ Component = &NavigationBar{}
