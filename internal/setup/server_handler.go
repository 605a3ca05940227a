package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/prometheustube/internal/config"
	"github.com/bornholm/prometheustube/internal/home"
	"github.com/bornholm/prometheustube/internal/pprof"
	"github.com/bornholm/prometheustube/internal/ratelimit"
	"github.com/bornholm/prometheustube/internal/ui"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	icons, err := NewIconProviderFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiter := ratelimit.New(
		rate.Limit(conf.RateLimit.Rate), int(conf.RateLimit.Burst),
		ratelimit.WithIdleTimeout(time.Duration(*conf.RateLimit.IdleTimeout)),
	)

	homeHandler := home.NewHandler(
		home.WithNavigationBarOptions(
			ui.WithBrand(string(conf.UI.Brand), "/"),
			ui.WithSearch(string(conf.UI.SearchPlaceholder), ui.Action{}),
			ui.WithAvatarInitial(string(conf.UI.AvatarInitial)),
			ui.WithIcons(icons),
			ui.WithLoginForm(
				ui.WithRememberMe(bool(conf.UI.RememberMe)),
			),
		),
		home.WithFragmentMiddleware(rateLimiter.Middleware(ratelimit.RemoteAddr)),
	)

	mux.Handle("GET /assets/", ui.AssetsHandler("/assets/"))

	if conf.Debug.Pprof {
		slog.WarnContext(ctx, "pprof endpoints enabled", slog.String("prefix", "/debug/pprof"))
		mux.Handle("/debug/pprof/", pprof.NewHandler("/debug/pprof", pprof.LoopbackOnly))
	}

	mux.Handle("/", slogMiddleware(homeHandler))

	return mux, nil
}
