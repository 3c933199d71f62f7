package compose

import "math/rand"

// Progression templates are scale-degree sequences, zero-based from the
// tonic. Each style family carries a handful of idiomatic shapes; the pop
// set serves the guitar-leaning styles that have no table of their own.
var (
	classicalProgressions = [][]int{
		{0, 3, 4, 0},
		{0, 5, 3, 4, 0},
		{0, 4, 5, 0},
		{0, 2, 3, 4, 0},
	}
	jazzProgressions = [][]int{
		{0, 5, 1, 4},
		{0, 0, 3, 3, 5, 5, 1, 4},
		{0, 6, 1, 4},
		{0, 2, 5, 1, 4, 0},
	}
	popProgressions = [][]int{
		{0, 5, 3, 4},
		{5, 3, 0, 4},
		{0, 4, 5, 3},
		{3, 4, 0, 5},
	}
	folkProgressions = [][]int{
		{0, 4, 0, 4},
		{0, 3, 4, 0},
		{0, 5, 4, 0},
	}
)

// commonDegrees extend a template when the progression grows without
// repeating: tonic, subdominant, dominant and submediant.
var commonDegrees = []int{0, 3, 4, 5}

// templatesFor maps a style to its progression template family. Rock and
// electronic lean on the pop shapes; everything else without its own table
// uses the classical set.
func templatesFor(style Style) [][]int {
	switch style {
	case StyleJazz:
		return jazzProgressions
	case StyleFolk:
		return folkProgressions
	case StyleRock, StyleElectronic:
		return popProgressions
	default:
		return classicalProgressions
	}
}

// Progression produces a degree sequence of exactly length entries. One
// template is drawn at random and grown until it is long enough: with
// probability 0.7 the last two entries repeat, otherwise a common degree is
// appended. The result is truncated to length, so short requests may use
// only a template prefix.
func Progression(rng *rand.Rand, style Style, length int) []int {
	if length <= 0 {
		return nil
	}
	templates := templatesFor(style)
	base := templates[rng.Intn(len(templates))]
	prog := append([]int(nil), base...)
	for len(prog) < length {
		if rng.Float64() < 0.7 {
			prog = append(prog, prog[len(prog)-2:]...)
		} else {
			prog = append(prog, commonDegrees[rng.Intn(len(commonDegrees))])
		}
	}
	return prog[:length]
}
