package ui

import (
	"bytes"
	"context"
	"testing"

	"github.com/bornholm/prometheustube/internal/ui/uitest"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func renderLoginForm(t *testing.T, form *LoginForm) *html.Node {
	t.Helper()

	var buff bytes.Buffer
	require.NoError(t, form.Render(context.Background(), &buff))

	doc, err := uitest.Parse(&buff)
	require.NoError(t, err)

	root := uitest.Find(doc, uitest.AttrEquals("data-component", "login-form"))
	require.NotNil(t, root, "login form should be rendered")

	return root
}

func TestLoginForm(t *testing.T) {
	form := renderLoginForm(t, NewLoginForm())

	heading := uitest.Find(form, uitest.Tag("h2"))
	require.NotNil(t, heading)
	require.Equal(t, "Welcome back!", uitest.Text(heading))

	fields := uitest.FindAll(form, uitest.Tag("input"), uitest.AttrIn("type", "text", "password"))
	require.Len(t, fields, 2, "login form should have exactly two text fields")

	username, password := fields[0], fields[1]

	for _, field := range fields {
		_, required := uitest.Attr(field, "required")
		require.True(t, required, "login fields should be marked as required")
	}

	usernameType, _ := uitest.Attr(username, "type")
	require.Equal(t, "text", usernameType)

	passwordType, _ := uitest.Attr(password, "type")
	require.Equal(t, "password", passwordType, "password should be obscured")

	usernameID, _ := uitest.Attr(username, "id")
	passwordID, _ := uitest.Attr(password, "id")
	require.NotEqual(t, usernameID, passwordID)

	toggles := uitest.FindAll(form, uitest.Tag("input"), uitest.AttrEquals("type", "checkbox"))
	require.Len(t, toggles, 1)
	_, checked := uitest.Attr(toggles[0], "checked")
	require.True(t, checked, "remember me should be checked by default")

	links := uitest.FindAll(form, uitest.Tag("a"))
	require.Len(t, links, 1)
	href, _ := uitest.Attr(links[0], "href")
	require.Equal(t, "/forgot-password", href)
	require.Equal(t, "Forgot password", uitest.Text(links[0]))

	buttons := uitest.FindAll(form, uitest.Tag("button"))
	require.Len(t, buttons, 1)
	require.Equal(t, "Login", uitest.Text(buttons[0]))

	buttonType, _ := uitest.Attr(buttons[0], "type")
	require.Equal(t, "button", buttonType, "unbound login button should not submit")

	for _, attr := range []string{"action", "method", "hx-post", "hx-get"} {
		_, exists := uitest.Attr(form, attr)
		require.False(t, exists, "unbound login form should not carry '%s'", attr)
	}
}

func TestLoginFormOptions(t *testing.T) {
	form := renderLoginForm(t, NewLoginForm(
		WithLoginFormID("login"),
		WithRememberMe(false),
		WithForgotPasswordURL("/account/recover"),
		WithSubmit(PostAction("/auth/login", "#main")),
	))

	id, _ := uitest.Attr(form, "id")
	require.Equal(t, "login", id)

	hxPost, _ := uitest.Attr(form, "hx-post")
	require.Equal(t, "/auth/login", hxPost)

	hxTarget, _ := uitest.Attr(form, "hx-target")
	require.Equal(t, "#main", hxTarget)

	toggle := uitest.Find(form, uitest.Tag("input"), uitest.AttrEquals("type", "checkbox"))
	require.NotNil(t, toggle)
	_, checked := uitest.Attr(toggle, "checked")
	require.False(t, checked)

	link := uitest.Find(form, uitest.Tag("a"))
	require.NotNil(t, link)
	href, _ := uitest.Attr(link, "href")
	require.Equal(t, "/account/recover", href)

	button := uitest.Find(form, uitest.Tag("button"))
	require.NotNil(t, button)
	buttonType, _ := uitest.Attr(button, "type")
	require.Equal(t, "submit", buttonType)
}

func TestLoginFormUniqueIDs(t *testing.T) {
	first := NewLoginForm()
	second := NewLoginForm()

	require.NotEqual(t, first.ID(), second.ID())
	require.True(t, first.RememberMe())
}
