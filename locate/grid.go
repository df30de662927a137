package locate

import (
	"image"
	"math"
)

// Grid is a template matching score map: one normalized squared difference
// per candidate top-left position, row-major. 0 is a perfect match.
type Grid struct {
	Cols, Rows int
	Values     []float32
}

// At returns the score at candidate (x, y).
func (g Grid) At(x, y int) float32 {
	return g.Values[y*g.Cols+x]
}

// MinLoc returns the best candidate and its score.
func (g Grid) MinLoc() (image.Point, float32) {
	best := image.Point{}
	lowest := float32(math.MaxFloat32)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if v := g.At(x, y); v < lowest {
				lowest = v
				best = image.Pt(x, y)
			}
		}
	}
	return best, lowest
}

// Select turns a score grid into match centers for a template of size tmpl.
// A candidate is accepted when 1-score >= confidence.
//
// With all unset only the global best candidate is considered. With all set
// the grid is scanned column by column; a candidate whose top-left falls in
// the box spanned by an accepted center and the template size is dropped,
// and after every candidate above the threshold the scan jumps a template
// height down the column.
func Select(g Grid, tmpl image.Point, confidence float64, all bool) []image.Point {
	if g.Cols <= 0 || g.Rows <= 0 || len(g.Values) < g.Cols*g.Rows {
		return nil
	}
	half := image.Pt(tmpl.X/2, tmpl.Y/2)

	if !all {
		loc, score := g.MinLoc()
		if 1-float64(score) < confidence {
			return nil
		}
		return []image.Point{loc.Add(half)}
	}

	skip := max(tmpl.Y, 1)
	var found []image.Point
	for x := 0; x < g.Cols; x++ {
		for y := 0; y < g.Rows; y++ {
			if 1-float64(g.At(x, y)) < confidence {
				continue
			}
			if !near(found, image.Pt(x, y), tmpl) {
				found = append(found, image.Pt(x, y).Add(half))
			}
			y += skip - 1
		}
	}
	return found
}

// near reports whether p lies inside [c.X-tmpl.X, c.X] x [c.Y-tmpl.Y, c.Y]
// for any accepted center c, most recent first.
func near(found []image.Point, p, tmpl image.Point) bool {
	for i := len(found) - 1; i >= 0; i-- {
		c := found[i]
		if p.X >= c.X-tmpl.X && p.X <= c.X && p.Y >= c.Y-tmpl.Y && p.Y <= c.Y {
			return true
		}
	}
	return false
}
