package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/zetalab/internal/config"
	"github.com/san-kum/zetalab/internal/logging"
	"github.com/san-kum/zetalab/internal/series"
)

type Experiment struct {
	cfg  *config.Config
	view View
}

// New validates cfg and resolves its view in the registry.
func New(reg *Registry, cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	view, err := reg.Get(cfg.View)
	if err != nil {
		return nil, err
	}
	return &Experiment{cfg: cfg, view: view}, nil
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Run computes the view. A canceled context is reported as ErrCanceled
// wrapping the context's own error.
func (e *Experiment) Run(ctx context.Context) (*series.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, canceled(err)
	}

	start := time.Now()
	set, err := e.view.Compute(ctx, e.cfg)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, canceled(err)
		}
		return nil, fmt.Errorf("%s: %w", e.cfg.View, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, canceled(err)
	}

	for _, w := range set.Warnings {
		logging.L().Warn("view.warning", "view", e.cfg.View, "warning", w)
	}
	logging.L().Debug("view.computed",
		"view", e.cfg.View,
		"series", len(set.Series),
		"elapsed", time.Since(start))
	return set, nil
}

func canceled(err error) error {
	if errors.Is(err, series.ErrCanceled) {
		return err
	}
	return fmt.Errorf("%w: %w", series.ErrCanceled, err)
}
