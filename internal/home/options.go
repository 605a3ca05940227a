package home

import (
	"net/http"

	"github.com/bornholm/prometheustube/internal/ui"
)

type Options struct {
	NavigationBar      []ui.NavigationBarOptionFunc
	FragmentMiddleware func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		NavigationBar: make([]ui.NavigationBarOptionFunc, 0),
		FragmentMiddleware: func(h http.Handler) http.Handler {
			return h
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithNavigationBarOptions customizes the navbar of every page. Avatar and
// dismiss actions left unbound default to the handler's event endpoints.
func WithNavigationBarOptions(funcs ...ui.NavigationBarOptionFunc) OptionFunc {
	return func(opts *Options) {
		opts.NavigationBar = append(opts.NavigationBar, funcs...)
	}
}

func WithFragmentMiddleware(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.FragmentMiddleware = middleware
	}
}
