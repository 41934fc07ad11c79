package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/sheaf/pkg/config"
	"github.com/aretw0/sheaf/pkg/index"
	"github.com/aretw0/sheaf/pkg/notebook"
	"github.com/aretw0/sheaf/pkg/validate"
)

// New wires a notebook service from an explicit configuration.
//
//	svc, err := sheaf.New(ctx, config.Default(), sheaf.WithLogger(logger))
func New(ctx context.Context, cfg config.Config, opts ...Option) (*notebook.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepository(ctx, cfg, o)
	if err != nil {
		return nil, err
	}

	svcOpts := []notebook.Option{
		notebook.WithLogger(o.logger),
		notebook.WithClock(o.clock),
		notebook.WithValidator(validate.New(validate.WithMarkers(cfg.TagsMarker, cfg.ContentMarker))),
		notebook.WithBuilder(index.New(index.WithTitle(cfg.IndexTitle))),
		notebook.WithDefaultTag(cfg.DefaultTag),
		notebook.WithSeqWidth(cfg.SeqWidth),
	}

	if cfg.Template != "" {
		tmpl, err := notebook.LoadTemplate(cfg.Template)
		if err != nil {
			return nil, err
		}
		svcOpts = append(svcOpts, notebook.WithTemplate(tmpl))
	}

	o.logger.Debug("notebook opened", "dir", cfg.Dir, "index", cfg.IndexFile, "versioning", cfg.Versioning)
	return notebook.New(repo, svcOpts...), nil
}
