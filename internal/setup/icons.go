package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/prometheustube/internal/config"
	"github.com/bornholm/prometheustube/internal/ui/icon"
	"github.com/pkg/errors"

	_ "github.com/bornholm/prometheustube/internal/ui/icon/dir"
	_ "github.com/bornholm/prometheustube/internal/ui/icon/embedded"
)

func NewIconProviderFromConfig(ctx context.Context, conf *config.Config) (icon.Provider, error) {
	var options map[string]any
	if conf.Icons.Options != nil {
		options = conf.Icons.Options.Data
	}

	provider, err := icon.New(icon.Type(conf.Icons.Type), options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "icon provider configured", slog.String("type", string(conf.Icons.Type)))

	return provider, nil
}
