package embedded

import (
	"embed"
	"io/fs"

	"github.com/bornholm/prometheustube/internal/ui/icon"
	"github.com/pkg/errors"
)

const Type icon.Type = "embed"

//go:embed glyphs/*.svg
var glyphs embed.FS

func init() {
	icon.Register(Type, func(options any) (icon.Provider, error) {
		return NewProvider(), nil
	})
}

// FS returns the built-in glyphs, one <name>.svg file per icon.
func FS() fs.FS {
	sub, err := fs.Sub(glyphs, "glyphs")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return sub
}

func NewProvider() *icon.FSProvider {
	return icon.NewFSProvider(FS())
}
