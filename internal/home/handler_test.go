package home

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/prometheustube/internal/ui"
	"github.com/bornholm/prometheustube/internal/ui/uitest"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func get(t *testing.T, handler http.Handler, url string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()

	return getFrom(t, handler, url, "", htmx)
}

func getFrom(t *testing.T, handler http.Handler, url string, referer string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	return res
}

func parse(t *testing.T, res *httptest.ResponseRecorder) *html.Node {
	t.Helper()

	doc, err := uitest.Parse(res.Body)
	require.NoError(t, err)

	return doc
}

func loginForms(doc *html.Node) []*html.Node {
	return uitest.FindAll(doc, uitest.AttrEquals("data-component", "login-form"))
}

func TestLoginModalScenario(t *testing.T) {
	handler := NewHandler()

	// Initial page: modal absent
	res := get(t, handler, "/", false)
	require.Equal(t, http.StatusOK, res.Code)

	doc := parse(t, res)
	require.NotNil(t, uitest.Find(doc, uitest.AttrEquals("data-component", "navbar")))
	require.Empty(t, loginForms(doc))

	overlay := uitest.Find(doc, uitest.AttrEquals("id", "navbar-login-modal"))
	require.NotNil(t, overlay)
	state, _ := uitest.Attr(overlay, "data-state")
	require.Equal(t, "closed", state)

	avatar := uitest.Find(doc, uitest.AttrEquals("data-role", "avatar"))
	require.NotNil(t, avatar)
	avatarURL, _ := uitest.Attr(avatar, "hx-get")
	require.Equal(t, "/components/navbar/events/avatar-click", avatarURL)

	// Avatar click: modal visible, hosting the login form
	res = get(t, handler, avatarURL, true)
	require.Equal(t, http.StatusOK, res.Code)

	doc = parse(t, res)
	overlay = uitest.Find(doc, uitest.AttrEquals("id", "navbar-login-modal"))
	require.NotNil(t, overlay)
	state, _ = uitest.Attr(overlay, "data-state")
	require.Equal(t, "open", state)
	require.Len(t, loginForms(doc), 1)
	require.Contains(t, uitest.Text(overlay), "Welcome back!")
	requireAvatarExpanded(t, doc, "true")

	dismiss := uitest.Find(overlay, uitest.AttrEquals("data-role", "dismiss"))
	require.NotNil(t, dismiss)
	dismissURL, _ := uitest.Attr(dismiss, "hx-get")
	require.Equal(t, "/components/navbar/events/modal-dismiss", dismissURL)

	// Dismissal: modal absent again
	res = get(t, handler, dismissURL, true)
	require.Equal(t, http.StatusOK, res.Code)

	doc = parse(t, res)
	overlay = uitest.Find(doc, uitest.AttrEquals("id", "navbar-login-modal"))
	require.NotNil(t, overlay)
	state, _ = uitest.Attr(overlay, "data-state")
	require.Equal(t, "closed", state)
	require.Empty(t, loginForms(doc))
	requireAvatarExpanded(t, doc, "false")
}

func requireAvatarExpanded(t *testing.T, doc *html.Node, expected string) {
	t.Helper()

	avatar := uitest.Find(doc, uitest.AttrEquals("id", "navbar-avatar"))
	require.NotNil(t, avatar, "fragment should carry the avatar")

	swap, _ := uitest.Attr(avatar, "hx-swap-oob")
	require.Equal(t, "true", swap)

	expanded, _ := uitest.Attr(avatar, "aria-expanded")
	require.Equal(t, expected, expanded)
}

func TestLoginModalWithoutHTMX(t *testing.T) {
	handler := NewHandler()

	res := get(t, handler, "/components/navbar/events/avatar-click", false)
	require.Equal(t, http.StatusSeeOther, res.Code)
	require.Equal(t, "/?modal=login", res.Header().Get("Location"))

	res = get(t, handler, "/?modal=login", false)
	require.Equal(t, http.StatusOK, res.Code)
	require.Len(t, loginForms(parse(t, res)), 1)

	res = get(t, handler, "/components/navbar/events/modal-dismiss", false)
	require.Equal(t, http.StatusSeeOther, res.Code)
	require.Equal(t, "/", res.Header().Get("Location"))
}

func TestLoginModalWithoutHTMXReturnsToReferer(t *testing.T) {
	handler := NewHandler()

	type testCase struct {
		Event    ui.Event
		Referer  string
		Expected string
	}

	testCases := []testCase{
		{Event: ui.EventAvatarClick, Referer: "http://example.com/forgot-password", Expected: "/forgot-password?modal=login"},
		{Event: ui.EventModalDismiss, Referer: "http://example.com/forgot-password?modal=login", Expected: "/forgot-password"},
		{Event: ui.EventAvatarClick, Referer: "/forgot-password", Expected: "/forgot-password?modal=login"},
		{Event: ui.EventAvatarClick, Referer: "https://evil.test/forgot-password", Expected: "/?modal=login"},
		{Event: ui.EventAvatarClick, Referer: "http://example.com//evil.test", Expected: "/?modal=login"},
		{Event: ui.EventAvatarClick, Referer: "http://example.com/components/navbar/events/avatar-click", Expected: "/?modal=login"},
		{Event: ui.EventModalDismiss, Referer: "javascript:alert(1)", Expected: "/"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.Event)+" "+tc.Referer, func(t *testing.T) {
			res := getFrom(t, handler, navbarEventURL(tc.Event), tc.Referer, false)
			require.Equal(t, http.StatusSeeOther, res.Code)
			require.Equal(t, tc.Expected, res.Header().Get("Location"))
		})
	}

	res := get(t, handler, "/forgot-password?modal=login", false)
	require.Equal(t, http.StatusOK, res.Code)
	require.Len(t, loginForms(parse(t, res)), 1)
}

func TestUnknownNavbarEvent(t *testing.T) {
	handler := NewHandler()

	res := get(t, handler, "/components/navbar/events/bell-click", true)
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestForgotPasswordPage(t *testing.T) {
	handler := NewHandler()

	res := get(t, handler, "/forgot-password", false)
	require.Equal(t, http.StatusOK, res.Code)

	doc := parse(t, res)
	require.NotNil(t, uitest.Find(doc, uitest.Tag("h1"), uitest.TextEquals("Forgot password")))
	require.NotNil(t, uitest.Find(doc, uitest.AttrEquals("data-component", "navbar")))

	title := uitest.Find(doc, uitest.Tag("title"))
	require.NotNil(t, title)
	require.Equal(t, "Forgot password", uitest.Text(title))
}

func TestUnknownPage(t *testing.T) {
	res := get(t, NewHandler(), "/watch/123", false)
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestHandlerOptions(t *testing.T) {
	calls := 0

	handler := NewHandler(
		WithNavigationBarOptions(
			ui.WithBrand("MyTube", "/"),
			ui.WithAvatarInitial("m"),
			ui.WithLoginForm(ui.WithRememberMe(false)),
		),
		WithFragmentMiddleware(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				next.ServeHTTP(w, r)
			})
		}),
	)

	doc := parse(t, get(t, handler, "/", false))
	require.NotNil(t, uitest.Find(doc, uitest.Tag("a"), uitest.TextEquals("MyTube")))

	avatar := uitest.Find(doc, uitest.AttrEquals("data-role", "avatar"))
	require.NotNil(t, avatar)
	require.Equal(t, "M", uitest.Text(avatar))
	require.Equal(t, 0, calls)

	doc = parse(t, get(t, handler, "/components/navbar/events/avatar-click", true))
	require.Equal(t, 1, calls)

	toggle := uitest.Find(doc, uitest.Tag("input"), uitest.AttrEquals("type", "checkbox"))
	require.NotNil(t, toggle)
	_, checked := uitest.Attr(toggle, "checked")
	require.False(t, checked)
}

func TestHandlerKeepsBoundNavbarActions(t *testing.T) {
	handler := NewHandler(
		WithNavigationBarOptions(
			ui.WithAvatar("m", ui.GetAction("/account/menu", "")),
			ui.WithDismiss(ui.GetAction("/account/close", "")),
		),
	)

	doc := parse(t, get(t, handler, "/?modal=login", false))

	avatar := uitest.Find(doc, uitest.AttrEquals("data-role", "avatar"))
	require.NotNil(t, avatar)
	avatarURL, _ := uitest.Attr(avatar, "hx-get")
	require.Equal(t, "/account/menu", avatarURL)

	dismiss := uitest.Find(doc, uitest.AttrEquals("data-role", "dismiss"))
	require.NotNil(t, dismiss)
	dismissURL, _ := uitest.Attr(dismiss, "hx-get")
	require.Equal(t, "/account/close", dismissURL)

	// Unbound actions still default to the event endpoints
	doc = parse(t, get(t, NewHandler(), "/?modal=login", false))

	dismiss = uitest.Find(doc, uitest.AttrEquals("data-role", "dismiss"))
	require.NotNil(t, dismiss)
	dismissURL, _ = uitest.Attr(dismiss, "hx-get")
	require.Equal(t, navbarEventURL(ui.EventModalDismiss), dismissURL)
}
