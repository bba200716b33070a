package uutest

// Origin tags a breakpoint of a consistent set with the hull it came from.
type Origin int

const (
	Convex  Origin = 0
	Concave Origin = 1
)

// ConsistentSet is a candidate partition merged from a GCM and an LCM. Tags
// are non-decreasing: every convex breakpoint precedes every concave one.
type ConsistentSet struct {
	Points []float64
	Tags   []Origin
}

// Crossover returns the index of the first concave breakpoint, or -1 if the
// set is entirely convex.
func (c ConsistentSet) Crossover() int {
	for i, tag := range c.Tags {
		if tag == Concave {
			return i
		}
	}
	return -1
}

// BuildConsistentSets merges the x-coordinates of a GCM and an LCM into the
// candidate partitions consistent with both. One candidate is returned per
// convex-to-concave crossover of the merged sequence.
func BuildConsistentSets(gcm, lcm []float64) []ConsistentSet {
	switch {
	case len(gcm) == 0 && len(lcm) == 0:
		return nil
	case len(gcm) == 0:
		return []ConsistentSet{uniformSet(lcm, Concave)}
	case len(lcm) == 0:
		return []ConsistentSet{uniformSet(gcm, Convex)}
	case gcm[len(gcm)-1] < lcm[0]:
		set := ConsistentSet{
			Points: make([]float64, 0, len(gcm)+len(lcm)),
			Tags:   make([]Origin, 0, len(gcm)+len(lcm)),
		}
		set.Points = append(append(set.Points, gcm...), lcm...)
		for i := range set.Points {
			set.Tags = append(set.Tags, originAt(i < len(gcm)))
		}
		return []ConsistentSet{set}
	}

	points, tags := mergeHulls(gcm, lcm)

	res := []ConsistentSet{}
	for i := 0; i+1 < len(points); i++ {
		if tags[i] != Convex || tags[i+1] != Concave {
			continue
		}
		set := ConsistentSet{}
		for j := 0; j <= i; j++ {
			if tags[j] == Convex {
				set.Points = append(set.Points, points[j])
				set.Tags = append(set.Tags, Convex)
			}
		}
		for j := i + 1; j < len(points); j++ {
			if tags[j] == Concave {
				set.Points = append(set.Points, points[j])
				set.Tags = append(set.Tags, Concave)
			}
		}
		res = append(res, set)
	}
	return res
}

// mergeHulls merge-sorts the distinct x-values of both chains. A value on
// the LCM is tagged concave, except that a leftmost value shared with the
// GCM anchors the convex side.
func mergeHulls(gcm, lcm []float64) ([]float64, []Origin) {
	points := make([]float64, 0, len(gcm)+len(lcm))
	tags := make([]Origin, 0, len(gcm)+len(lcm))

	i, j := 0, 0
	for i < len(gcm) || j < len(lcm) {
		switch {
		case j == len(lcm) || (i < len(gcm) && gcm[i] < lcm[j]):
			points, tags = append(points, gcm[i]), append(tags, Convex)
			i++
		case i == len(gcm) || lcm[j] < gcm[i]:
			points, tags = append(points, lcm[j]), append(tags, Concave)
			j++
		default:
			tag := Concave
			if len(points) == 0 {
				// every candidate keeps the sample minimum as its first breakpoint
				tag = Convex
			}
			points, tags = append(points, lcm[j]), append(tags, tag)
			i++
			j++
		}
	}
	return points, tags
}

func uniformSet(points []float64, tag Origin) ConsistentSet {
	set := ConsistentSet{
		Points: append([]float64(nil), points...),
		Tags:   make([]Origin, len(points)),
	}
	for i := range set.Tags {
		set.Tags[i] = tag
	}
	return set
}

func originAt(convex bool) Origin {
	if convex {
		return Convex
	}
	return Concave
}
