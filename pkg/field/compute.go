package field

import (
	"context"
	"math"
	"runtime"
	"sync"
)

// Grids below this many cells are cheaper to fill inline than to fan out.
const parallelThreshold = 4096

// Compute runs the field computation to completion with no cancellation
// point. See ComputeContext.
func Compute(p Params) (*View, error) {
	return ComputeContext(context.Background(), p)
}

// ComputeContext validates p, samples the window on an Nx by Ny grid and
// returns the escape-iteration field for it. The computation is a pure
// function of p: it performs no I/O and touches no shared state, so repeated
// calls yield bit-identical views. Large grids are filled by a pool of
// row-block workers; cancelling ctx abandons the computation between rows and
// returns ctx.Err() with no partial view.
func ComputeContext(ctx context.Context, p Params) (*View, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	v := &View{
		X:       linspace(real(p.Min), real(p.Max), p.Nx),
		Y:       linspace(imag(p.Min), imag(p.Max), p.Ny),
		Z:       make([]float64, p.Nx*p.Ny),
		MaxIter: p.MaxIter,
	}

	if p.Nx*p.Ny <= parallelThreshold {
		computeRows(ctx, v, p, 0, p.Nx)
	} else {
		workers := runtime.GOMAXPROCS(0)
		if workers > p.Nx {
			workers = p.Nx
		}
		stride := (p.Nx + workers - 1) / workers

		wg := &sync.WaitGroup{}
		for start := 0; start < p.Nx; start += stride {
			end := start + stride
			if end > p.Nx {
				end = p.Nx
			}

			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				computeRows(ctx, v, p, start, end)
			}(start, end)
		}
		wg.Wait()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

// computeRows fills rows [start, end) of the matrix. Callers hand each worker
// a disjoint row range, so no cell is ever written twice and the matrix needs
// no locking. Cancellation is checked between rows, never inside one.
func computeRows(ctx context.Context, v *View, p Params, start, end int) {
	ny := len(v.Y)
	for i := start; i < end; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		cr := v.X[i]
		row := v.Z[i*ny : (i+1)*ny]
		for j, ci := range v.Y {
			row[j] = escapeTime(cr, ci, p.MaxIter, p.Smooth)
		}
	}
}

// escapeTime iterates z <- z^2 + c from z = 0 and reports the iteration at
// which the orbit left the |z| <= 2 disc, or maxIter if it stayed inside for
// the whole budget. The divergence test compares the squared modulus against
// 4, keeping the sqrt out of the loop. With smooth set, the integer count k
// is replaced by k - log2(log2|z|), which blends away the banding between
// adjacent counts; the corrected value always stays below k and is clamped
// at zero for points that blow far past the radius on their first step.
func escapeTime(cr, ci float64, maxIter int, smooth bool) float64 {
	var zr, zi float64
	for k := 0; k < maxIter; k++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > 4 {
			if !smooth {
				return float64(k)
			}
			// log2(log2|z|) written in terms of the squared modulus
			// m2: log2(log2(m2)) - 1.
			val := float64(k) + 1 - math.Log2(math.Log2(zr2+zi2))
			if val < 0 {
				val = 0
			}
			return val
		}
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
	}
	return float64(maxIter)
}
