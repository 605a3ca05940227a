package ui

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/pkg/errors"
)

//go:embed static/*
var staticFs embed.FS

// AssetsHandler serves the embedded stylesheets under the given prefix.
func AssetsHandler(prefix string) http.Handler {
	sub, err := fs.Sub(staticFs, "static")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return http.StripPrefix(prefix, http.FileServerFS(sub))
}
