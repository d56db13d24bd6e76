package editor

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/matcolor"
	"github.com/gogpu/matcolor/palette"
)

// ErrNilResolver is returned when a workflow is started without a palette.
var ErrNilResolver = errors.New("editor: nil resolver")

// CopySuffix marks the working copy of a material while it is being
// remapped. Materials whose name ends in it are left alone, so a run that
// was interrupted halfway is not copied again.
const CopySuffix = "_copy"

// MatteRoughness is the roughness given to remapped materials.
const MatteRoughness = 1.0

// Option configures RemapMaterials.
type Option func(*remapOptions)

type remapOptions struct {
	workers int
}

func defaultRemapOptions() remapOptions {
	return remapOptions{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers limits how many colors are resolved concurrently.
// Values below 1 mean one worker.
func WithWorkers(n int) Option {
	return func(o *remapOptions) {
		o.workers = max(n, 1)
	}
}

// Report summarizes a RemapMaterials run.
type Report struct {
	// Objects is the number of selected objects visited.
	Objects int
	// Remapped lists the recolored materials in slot order.
	Remapped []string
	// Defaulted lists materials without a palette entry; they got the
	// default color.
	Defaulted []string
	// Skipped lists working copies that were left untouched.
	Skipped []string
}

// RemapMaterials recolors every material in the slots of the selected
// objects with the color the resolver returns for its name in category.
//
// Each material is replaced by a matte copy: the copy is created under
// "<name>_copy", takes the resolved color and MatteRoughness, then
// replaces the source everywhere and takes over its name. Names are
// therefore stable, and running the workflow again yields the same
// colors. A material shared by several slots is replaced once.
//
// Colors are resolved concurrently; the scene is only mutated afterwards,
// sequentially and in slot order. Names missing from the palette never stop
// the batch. A canceled ctx stops it before any mutation.
func RemapMaterials(ctx context.Context, ed Editor, res *palette.Resolver, category string, opts ...Option) (Report, error) {
	if res == nil {
		return Report{}, ErrNilResolver
	}
	o := defaultRemapOptions()
	for _, opt := range opts {
		opt(&o)
	}

	objects := ed.SelectedObjects()
	report := Report{Objects: len(objects)}
	var sources []*Material
	seen := make(map[*Material]bool)
	for _, obj := range objects {
		if len(obj.Slots) == 0 {
			matcolor.Logger().Warn("editor: object has no material slots", "object", obj.Name)
			continue
		}
		for _, m := range obj.Slots {
			if m == nil || seen[m] {
				continue
			}
			seen[m] = true
			if strings.HasSuffix(m.Name, CopySuffix) {
				report.Skipped = append(report.Skipped, m.Name)
				continue
			}
			sources = append(sources, m)
		}
	}

	colors := make([]matcolor.RGBA, len(sources))
	found := make([]bool, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, m := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			colors[i] = res.Resolve(m.Name, category)
			_, found[i] = res.Lookup(m.Name, category)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	for i, src := range sources {
		c := ed.CopyMaterial(src, src.Name+CopySuffix)
		c.BaseColor = colors[i]
		c.Roughness = MatteRoughness
		ed.ReplaceMaterial(src, c)
		matcolor.Logger().Debug("editor: material remapped", "material", c.Name, "found", found[i])

		report.Remapped = append(report.Remapped, c.Name)
		if !found[i] {
			report.Defaulted = append(report.Defaulted, c.Name)
		}
	}

	matcolor.Logger().Info("editor: materials remapped",
		"category", category,
		"objects", report.Objects,
		"remapped", len(report.Remapped),
		"defaulted", len(report.Defaulted),
		"skipped", len(report.Skipped))
	return report, nil
}
