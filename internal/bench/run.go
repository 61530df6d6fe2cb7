package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/oliverbestmann/gm"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Points   int
	MaxError float64
	Duration time.Duration
}

// Run transforms random points through the chained transforms and back
// through its inverse, and reports the largest distance between a point
// and its round tripped copy.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	if cfg.Rotation == "basis" {
		return run[gm.Basis3[float64]](ctx, cfg)
	}

	return run[gm.Quat[float64]](ctx, cfg)
}

// Build chains the configured transforms into one.
func Build[R gm.Rotation3[float64, R]](transforms []TransformConfig) gm.Decomposed3[float64, R] {
	if len(transforms) == 0 {
		return gm.IdentityDecomposed[float64, gm.Vec3[float64], R]()
	}

	decomposed := make([]gm.Decomposed3[float64, R], len(transforms))
	for idx, tr := range transforms {
		decomposed[idx] = buildOne[R](tr)
	}

	return gm.Chain(decomposed[0], decomposed[1:]...)
}

func buildOne[R gm.Rotation3[float64, R]](tr TransformConfig) gm.Decomposed3[float64, R] {
	var rot R
	if tr.Axis.LengthSqr() == 0 {
		rot = rot.Identity()
	} else {
		rot = rot.FromMat3(gm.AxisAngleMat3(tr.Axis.Normalized(), tr.Angle))
	}

	return gm.Decomposed3[float64, R]{
		Scale: tr.Scale,
		Rot:   rot,
		Disp:  tr.Translation,
	}
}

func run[R gm.Rotation3[float64, R]](ctx context.Context, cfg Config) (Result, error) {
	forward := Build[R](cfg.Transforms)

	inverse, err := forward.Inverse()
	if err != nil {
		return Result{}, fmt.Errorf("invert transform chain: %w", err)
	}

	startTime := time.Now()

	// each worker writes only its own slot
	maxErrors := make([]float64, cfg.Workers)

	group, ctx := errgroup.WithContext(ctx)

	for worker := range cfg.Workers {
		count := cfg.Iterations / cfg.Workers
		if worker < cfg.Iterations%cfg.Workers {
			count++
		}

		group.Go(func() error {
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(worker)))

			for idx := range count {
				if idx%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				point := gm.Vec3Of(
					rng.Float64()*2-1,
					rng.Float64()*2-1,
					rng.Float64()*2-1,
				).Mul(cfg.Extent)

				roundTrip := inverse.TransformPoint(forward.TransformPoint(point))
				maxErrors[worker] = max(maxErrors[worker], roundTrip.Sub(point).Length())
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{
		Points:   cfg.Iterations,
		Duration: time.Since(startTime),
	}

	for _, value := range maxErrors {
		result.MaxError = max(result.MaxError, value)
	}

	return result, nil
}
