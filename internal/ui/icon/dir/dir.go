package dir

import (
	"os"

	"github.com/bornholm/prometheustube/internal/ui/icon"
	"github.com/bornholm/prometheustube/internal/ui/icon/embedded"
	"github.com/go-viper/mapstructure/v2"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

const Type icon.Type = "dir"

func init() {
	icon.Register(Type, CreateProviderFromOptions)
}

type Options struct {
	Dir string `mapstructure:"dir"`
}

func CreateProviderFromOptions(options any) (icon.Provider, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' icon provider options", Type)
	}

	if opts.Dir == "" {
		return nil, errors.Errorf("'%s' icon provider requires the 'dir' option", Type)
	}

	info, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !info.IsDir() {
		return nil, errors.Errorf("'%s' is not a directory", opts.Dir)
	}

	return NewProvider(opts.Dir), nil
}

// NewProvider serves glyphs from dir, falling back to the built-in set.
func NewProvider(dir string) *icon.FSProvider {
	return icon.NewFSProvider(mergefs.Merge(os.DirFS(dir), embedded.FS()))
}
