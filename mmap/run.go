package mmap

import (
	"context"
	"fmt"
	"io"

	"github.com/joshuapare/mmapgen/pkg/types"
)

// RunOptions controls which optional phases Run performs.
type RunOptions struct {
	// Output is the file the map is saved to. Empty skips saving.
	Output string

	// Draw receives the human readable table when non-nil.
	Draw io.Writer
}

// Run drives m through validation, generation, info, drawing and saving.
// ctx is checked between phases; a cancelled run never saves.
func Run(ctx context.Context, m types.MemoryMap, opts RunOptions) (types.Info, error) {
	if err := checkpoint(ctx); err != nil {
		return types.Info{}, err
	}
	if err := m.ValidateConfig(); err != nil {
		return types.Info{}, err
	}
	if err := checkpoint(ctx); err != nil {
		return types.Info{}, err
	}
	if err := m.GenerateMmap(); err != nil {
		return types.Info{}, err
	}
	info := m.GenerateInfo()

	if opts.Draw != nil {
		if err := m.Draw(opts.Draw); err != nil {
			return info, fmt.Errorf("draw: %w", err)
		}
	}
	if opts.Output == "" {
		return info, nil
	}
	if err := checkpoint(ctx); err != nil {
		return info, err
	}
	return info, m.Save(opts.Output)
}

func checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return nil
}
