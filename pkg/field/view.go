package field

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// View is the immutable result bundle of one computation: the two axis
// vectors and the dense matrix of escape values they index. Consumers only
// ever read a View; derived images and tables are fresh allocations.
type View struct {
	// X and Y hold the sample coordinates for the matrix rows and columns.
	X, Y []float64

	// Z is the field matrix in row-major order: Z[i*len(Y)+j] belongs to
	// the sample point c = X[i] + Y[j]i. Escaped points hold their
	// (possibly fractional) escape count in [0, MaxIter); points that
	// never escaped hold exactly MaxIter.
	Z []float64

	// MaxIter is the iteration budget the field was computed with. It
	// doubles as the in-set sentinel value in Z.
	MaxIter int
}

// Nx returns the number of samples along the x axis (matrix rows).
func (v *View) Nx() int { return len(v.X) }

// Ny returns the number of samples along the y axis (matrix columns).
func (v *View) Ny() int { return len(v.Y) }

// At returns the field value for the sample point X[i] + Y[j]i.
func (v *View) At(i, j int) float64 { return v.Z[i*len(v.Y)+j] }

// InSet reports whether sample (i, j) stayed bounded for the whole budget.
func (v *View) InSet(i, j int) bool { return v.At(i, j) == float64(v.MaxIter) }

// String returns the one-line human summary of the view: sampled ranges,
// grid dimensions and iteration budget.
func (v *View) String() string {
	return fmt.Sprintf("mandelbrot field %dx%d, x [%g, %g], y [%g, %g], %d iteration cap",
		v.Nx(), v.Ny(),
		v.X[0], v.X[v.Nx()-1],
		v.Y[0], v.Y[v.Ny()-1],
		v.MaxIter)
}

// WriteTable writes the view as a three-column CSV table with the header
// "x,y,value" and one row per matrix cell, Nx*Ny rows in total. Rows follow
// the storage order of Z, x varying slowest and y fastest, so the table
// reshapes losslessly back into the matrix.
func (v *View) WriteTable(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "value"}); err != nil {
		return err
	}

	ny := len(v.Y)
	rec := make([]string, 3)
	for i, x := range v.X {
		rec[0] = strconv.FormatFloat(x, 'g', -1, 64)
		for j, y := range v.Y {
			rec[1] = strconv.FormatFloat(y, 'g', -1, 64)
			rec[2] = strconv.FormatFloat(v.Z[i*ny+j], 'g', -1, 64)
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
