package platform

import (
	"context"

	"github.com/aretw0/sheaf/pkg/adapters/fs"
	"github.com/aretw0/sheaf/pkg/config"
	"github.com/aretw0/sheaf/pkg/core"
)

// Init returns the repository described by cfg, prepared according to opts.
func Init(ctx context.Context, cfg config.Config, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(ctx, cfg, o)
}

func initRepository(ctx context.Context, cfg config.Config, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	repo := fs.NewRepository(fs.Config{
		Path:         cfg.Dir,
		IndexFile:    cfg.IndexFile,
		Ignore:       cfg.Ignore,
		MustExist:    o.mustExist && !o.autoInit,
		AutoInit:     o.autoInit,
		Versioning:   cfg.Versioning,
		Debounce:     cfg.Debounce,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})

	if o.autoInit || o.mustExist {
		if err := repo.Initialize(ctx); err != nil {
			return nil, err
		}
	}
	return repo, nil
}
