package ui

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

const DefaultForgotPasswordURL = "/forgot-password"

type LoginFormOptions struct {
	ID                string
	RememberMe        bool
	ForgotPasswordURL string
	Submit            Action
}

type LoginFormOptionFunc func(opts *LoginFormOptions)

func NewLoginFormOptions(funcs ...LoginFormOptionFunc) *LoginFormOptions {
	opts := &LoginFormOptions{
		RememberMe:        true,
		ForgotPasswordURL: DefaultForgotPasswordURL,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithLoginFormID(id string) LoginFormOptionFunc {
	return func(opts *LoginFormOptions) {
		opts.ID = id
	}
}

func WithRememberMe(checked bool) LoginFormOptionFunc {
	return func(opts *LoginFormOptions) {
		opts.RememberMe = checked
	}
}

func WithForgotPasswordURL(url string) LoginFormOptionFunc {
	return func(opts *LoginFormOptions) {
		opts.ForgotPasswordURL = url
	}
}

// WithSubmit binds the login button. Without it the button is inert.
func WithSubmit(action Action) LoginFormOptionFunc {
	return func(opts *LoginFormOptions) {
		opts.Submit = action
	}
}

// LoginForm is the "Welcome back!" panel: username and password fields, a
// "Remember me" toggle, a link to the forgot password page and the login
// button.
type LoginForm struct {
	id                string
	rememberMe        bool
	forgotPasswordURL string
	submit            Action
}

type loginFormTemplateData struct {
	ID                string
	UsernameID        string
	PasswordID        string
	RememberMeID      string
	RememberMe        bool
	ForgotPasswordURL string
	Submit            Action
}

func (f *LoginForm) ID() string {
	return f.id
}

func (f *LoginForm) RememberMe() bool {
	return f.rememberMe
}

// Render implements Component.
func (f *LoginForm) Render(ctx context.Context, w io.Writer) error {
	data := loginFormTemplateData{
		ID:                f.id,
		UsernameID:        f.id + "-username",
		PasswordID:        f.id + "-password",
		RememberMeID:      f.id + "-remember-me",
		RememberMe:        f.rememberMe,
		ForgotPasswordURL: f.forgotPasswordURL,
		Submit:            f.submit,
	}

	if err := components.ExecuteTemplate(w, "login-form", data); err != nil {
		return errors.Wrap(err, "could not render login form")
	}

	return nil
}

func NewLoginForm(funcs ...LoginFormOptionFunc) *LoginForm {
	opts := NewLoginFormOptions(funcs...)

	id := opts.ID
	if id == "" {
		id = NewID("login-form")
	}

	return &LoginForm{
		id:                id,
		rememberMe:        opts.RememberMe,
		forgotPasswordURL: opts.ForgotPasswordURL,
		submit:            opts.Submit,
	}
}

var _ Component = &LoginForm{}
