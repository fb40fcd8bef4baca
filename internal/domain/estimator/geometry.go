package estimator

import (
	"math"
	"strconv"

	"house_calculator/internal/domain/entities"
)

const (
	concreteDensity   = 2400.0 // kg/m³
	mortarDensity     = 2000.0 // kg/m³
	openingDeduction  = 0.85
	roofPitchFactor   = 1.2
	steelAreaPerCubic = 10.0

	foundationSteelRatio = 0.1
	wallSteelRatio       = 0.08
)

// surface is the face geometry shared by every wall variant.
type surface struct {
	length float64
	height float64
}

func (s surface) area() float64 {
	return s.length * s.height
}

func foundationVolume(f entities.Foundation) float64 {
	return f.Width * f.Depth * f.Length
}

func roofArea(r entities.Roof) float64 {
	return r.Length * r.Width * roofPitchFactor
}

func roofLine(r entities.Roof, area float64) entities.MaterialLine {
	return line("Roof Material ("+r.Material+")", round2(area), entities.UnitSquareMeter)
}

func line(name string, qty float64, unit string) entities.MaterialLine {
	return entities.MaterialLine{Name: name, Quantity: qty, Unit: unit}
}

// fold reduces xs left to right starting from acc.
func fold[T, A any](xs []T, acc A, f func(A, T) A) A {
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

func mapWalls[T any](walls []entities.Wall, f func(entities.Wall) T) []T {
	out := make([]T, len(walls))
	for i, w := range walls {
		out[i] = f(w)
	}
	return out
}

// round0 rounds half to even.
func round0(v float64) float64 {
	return math.RoundToEven(v)
}

// round2 rounds the exact binary value to two decimals, half to even, so
// 2.675 (stored as 2.67499...) gives 2.67.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
