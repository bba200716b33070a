package uutest

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Hulls holds the empirical CDF of a sub-sample together with its greatest
// convex minorant (GCM) and least concave majorant (LCM). Both chains are
// ordered by ascending x and share the first and last ECDF point.
type Hulls struct {
	// Support and F are the ECDF points: the left histogram edge with mass
	// 0 followed by every right bin edge with its cumulative mass.
	Support []float64
	F       []float64

	GCM orb.LineString
	LCM orb.LineString
}

func (h *Hulls) GCMX() []float64 {
	return chainX(h.GCM)
}

func (h *Hulls) LCMX() []float64 {
	return chainX(h.LCM)
}

// ExtractHulls computes the ECDF of x from a histogram with the given number
// of bins (len(x) if bins <= 0) and returns it with its GCM and LCM.
func ExtractHulls(x []float64, bins int) *Hulls {
	if len(x) == 0 {
		return &Hulls{}
	}
	if !sort.Float64sAreSorted(x) {
		x = append([]float64(nil), x...)
		sort.Float64s(x)
	}
	if bins <= 0 {
		bins = len(x)
	}

	lo, hi := x[0], x[len(x)-1]
	if lo == hi {
		p := orb.Point{lo, 1}
		return &Hulls{
			Support: []float64{lo},
			F:       []float64{1},
			GCM:     orb.LineString{p},
			LCM:     orb.LineString{p},
		}
	}

	support, cdf := empiricalCdf(x, lo, hi, bins)
	points := make([]orb.Point, len(support))
	for i := range support {
		points[i] = orb.Point{support[i], cdf[i]}
	}

	res := &Hulls{Support: support, F: cdf}
	if len(points) < 3 {
		res.GCM = orb.LineString{points[0], points[len(points)-1]}
		res.LCM = orb.LineString{points[0], points[len(points)-1]}
		return res
	}

	res.GCM, res.LCM = splitHull(convexHull(points))
	return res
}

// empiricalCdf bins the sorted x into bins equal-width bins over [lo, hi]
// and returns the bin edges with the normalized cumulative counts.
func empiricalCdf(x []float64, lo, hi float64, bins int) ([]float64, []float64) {
	edges := floats.Span(make([]float64, bins+1), lo, hi)
	edges[bins] = hi

	// stat.Histogram needs the last divider strictly above the maximum.
	dividers := append([]float64(nil), edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, x, nil)

	cdf := make([]float64, bins+1)
	floats.CumSum(cdf[1:], counts)
	total := cdf[bins]
	floats.Scale(1/total, cdf)
	cdf[bins] = 1
	return edges, cdf
}

// convexHull returns the convex hull of points, which must be sorted by
// strictly increasing x, counter-clockwise starting at the leftmost point.
// Collinear points are dropped.
func convexHull(points []orb.Point) orb.Ring {
	lower := make([]orb.Point, 0, len(points))
	for _, p := range points {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]orb.Point, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	ring := make(orb.Ring, 0, len(lower)+len(upper)-2)
	ring = append(ring, lower[:len(lower)-1]...)
	ring = append(ring, upper[:len(upper)-1]...)
	return ring
}

func cross(o, a, b orb.Point) float64 {
	return (a.X()-o.X())*(b.Y()-o.Y()) - (a.Y()-o.Y())*(b.X()-o.X())
}

// splitHull cuts a counter-clockwise hull at its maximum-x vertex into the
// lower chain (GCM) and the upper chain (LCM), both left to right.
func splitHull(ring orb.Ring) (orb.LineString, orb.LineString) {
	split := 0
	for i, p := range ring {
		if p.X() > ring[split].X() {
			split = i
		}
	}

	gcm := append(orb.LineString(nil), ring[:split+1]...)

	lcm := make(orb.LineString, 0, len(ring)-split+1)
	lcm = append(lcm, ring[0])
	for i := len(ring) - 1; i >= split; i-- {
		lcm = append(lcm, ring[i])
	}
	return gcm, lcm
}

func chainX(ls orb.LineString) []float64 {
	res := make([]float64, len(ls))
	for i, p := range ls {
		res[i] = p.X()
	}
	return res
}
