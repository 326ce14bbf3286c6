package main

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is a fitted circle and its RMS radial residual.
type Circle struct {
	Center   r2.Vec
	Radius   float64
	Residual float64
}

// fitAlgebraic solves x² + y² + Dx + Ey + F = 0 in the least-squares sense.
// It is exact for points on a circle and seeds the geometric fit.
func fitAlgebraic(points []r2.Vec) (Circle, error) {
	n := len(points)
	a := mat.NewDense(n, 3, nil)
	b := mat.NewVecDense(n, nil)
	for i, p := range points {
		a.Set(i, 0, p.X)
		a.Set(i, 1, p.Y)
		a.Set(i, 2, 1)
		b.SetVec(i, -(p.X*p.X + p.Y*p.Y))
	}
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return Circle{}, fmt.Errorf("algebraic fit: %w", err)
	}
	c := r2.Vec{X: -x.AtVec(0) / 2, Y: -x.AtVec(1) / 2}
	r2sq := c.X*c.X + c.Y*c.Y - x.AtVec(2)
	if !(r2sq > 0) {
		return Circle{}, errors.New("algebraic fit: points are collinear")
	}
	return Circle{Center: c, Radius: math.Sqrt(r2sq)}, nil
}

// radialSpread returns the mean distance from c to points and the RMS of
// the deviations from it.
func radialSpread(c r2.Vec, points []r2.Vec) (mean, rms float64) {
	for _, p := range points {
		mean += r2.Norm(r2.Sub(p, c))
	}
	mean /= float64(len(points))
	for _, p := range points {
		d := r2.Norm(r2.Sub(p, c)) - mean
		rms += d * d
	}
	return mean, math.Sqrt(rms / float64(len(points)))
}

// FitCircle fits a circle to points by minimizing the radial residuals with
// Nelder-Mead, starting from the algebraic fit.
func FitCircle(points []r2.Vec) (Circle, error) {
	if len(points) < 3 {
		return Circle{}, fmt.Errorf("need at least 3 points, got %d", len(points))
	}
	seed, err := fitAlgebraic(points)
	if err != nil {
		return Circle{}, err
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			_, rms := radialSpread(r2.Vec{X: x[0], Y: x[1]}, points)
			return rms * rms
		},
	}
	init := []float64{seed.Center.X, seed.Center.Y}
	result, err := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
	center := seed.Center
	if err == nil && result.F <= problem.Func(init) {
		center = r2.Vec{X: result.X[0], Y: result.X[1]}
	}

	radius, rms := radialSpread(center, points)
	return Circle{Center: center, Radius: radius, Residual: rms}, nil
}
