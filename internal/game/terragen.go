package game

import (
	"math"
	"math/rand"
)

const (
	// FeatureSize is the horizontal span of one terrain feature.
	FeatureSize = 200
	// NoiseSize bounds the per-column jitter around the feature slope.
	NoiseSize = 4
)

// waypoint is a target the terrain slopes toward, feature-local until the
// generator offsets it into world x.
type waypoint struct {
	X, Y float64
}

// GenerateTerrain builds a terrain of mapW columns whose skyline walks
// through randomly chosen valley, hill and plateau features, flattened
// into ledges of tankSize.X width at each requested tank x. It returns
// the terrain and the bottom-left spawn point for each ledge, in the
// same left-to-right order as tankXs.
func GenerateTerrain(rng *rand.Rand, mapW, mapH int, tankXs []int, tankSize Vec2) (*Terrain, []Vec2) {
	maxHeight := float64(mapH) - tankSize.Y*2
	prev := math.Min(float64(rng.Intn(mapH)), maxHeight)

	pending := make([]int, len(tankXs))
	copy(pending, tankXs)
	nextTank := mapW + 1
	if len(pending) > 0 {
		nextTank = pending[0]
		pending = pending[1:]
	}

	points := topology(rng, prev, mapW, mapH, maxHeight)
	next := points[0]
	points = points[1:]

	tankW := int(tankSize.X)
	cols := make([][]float64, mapW)
	var spawns []Vec2
	for x := 0; x < mapW; x++ {
		var top float64
		switch {
		case x < nextTank:
			top = terrainHeight(rng, x, prev, maxHeight, nextTank, next)
		case x == nextTank:
			top = terrainHeight(rng, x, prev, maxHeight, nextTank, next)
			spawns = append(spawns, Vec2{float64(x), top})
		case x < nextTank+tankW-1:
			top = prev
		default:
			top = prev
			if len(pending) > 0 {
				nextTank = pending[0]
				pending = pending[1:]
			} else {
				nextTank = mapW + 1
			}
		}

		if int(math.Floor(next.X)) == x && len(points) > 0 {
			next = points[0]
			points = points[1:]
		}

		cols[x] = []float64{0, top}
		prev = top
	}
	return &Terrain{Columns: cols}, spawns
}

// terrainHeight advances the skyline one column toward the next waypoint,
// with bounded noise. The slope is doubled when a tank ledge must be
// reached before the waypoint, so the column above the ledge still lands
// near the feature curve.
func terrainHeight(rng *rand.Rand, x int, prev, maxHeight float64, nextTank int, next waypoint) float64 {
	distX := next.X - float64(x)
	distY := next.Y - prev
	var slope float64
	if distX != 0 {
		slope = distY / distX
		if float64(nextTank) < next.X {
			slope *= 2
		}
	} else {
		slope = distY
	}
	want := math.Ceil(prev + slope)
	lo := int(math.Max(want-NoiseSize, 1))
	hi := int(math.Min(want+NoiseSize, maxHeight))
	if hi <= lo {
		return clamp(want, 1, maxHeight)
	}
	return float64(lo + rng.Intn(hi-lo)) // #nosec G404 -- match RNG, not crypto
}

// topology picks ceil(mapW/FeatureSize) features and concatenates their
// waypoints, offset into world x. The same feature kind never repeats
// three times in a row. Each feature starts from the height the previous
// one ended at.
func topology(rng *rand.Rand, initHeight float64, mapW, mapH int, maxHeight float64) []waypoint {
	numFeatures := (mapW + FeatureSize - 1) / FeatureSize
	gens := []func(*rand.Rand, float64, float64, float64, float64) []waypoint{
		valleyFeature, hillFeature, plateauFeature,
	}
	recent := [2]int{rng.Intn(len(gens)), rng.Intn(len(gens))}
	height := initHeight
	var points []waypoint
	for i := 0; i < numFeatures; i++ {
		var idx int
		for {
			idx = rng.Intn(len(gens))
			if !(recent[0] == idx && recent[1] == idx) {
				break
			}
		}
		fresh := gens[idx](rng, float64(mapH), height, maxHeight, FeatureSize)
		for _, p := range fresh {
			points = append(points, waypoint{p.X + float64(i*FeatureSize), p.Y})
		}
		height = fresh[len(fresh)-1].Y
		recent[0], recent[1] = recent[1], idx
	}
	return points
}

func valleyFeature(rng *rand.Rand, mapH, prev, maxHeight, size float64) []waypoint {
	switch rng.Intn(3) {
	case 0: // deep
		if prev > mapH/2 {
			return []waypoint{{size / 4, prev * 5 / 6}, {size / 2, prev / 4}, {size, mapH / 20}}
		}
		return []waypoint{{size / 4, prev / 2}, {size / 2, mapH / 10}, {size, mapH / 20}}
	case 1: // shallow
		return []waypoint{{size / 4, prev * 5 / 6}, {size / 2, prev / 2}, {size, prev / 4}}
	default: // wavy
		return []waypoint{{size / 4, prev / 2}, {size / 2, prev}, {size * 3 / 4, prev / 2}, {size, prev}}
	}
}

func hillFeature(rng *rand.Rand, mapH, prev, maxHeight, size float64) []waypoint {
	if rng.Intn(2) == 0 { // steep
		if prev < mapH/2 {
			return []waypoint{
				{size / 4, math.Min(prev*2, maxHeight)},
				{size / 2, math.Min(mapH*4/5, maxHeight)},
				{size, math.Min(mapH*9/10, maxHeight)},
			}
		}
		return []waypoint{
			{size / 4, math.Min(mapH*4/5, maxHeight)},
			{size / 2, math.Min(mapH*9/10, maxHeight)},
			{size, math.Min(mapH*9/10, maxHeight)},
		}
	}
	// concave
	return []waypoint{{size / 2, mapH / 2}, {size, mapH * 3 / 4}}
}

func plateauFeature(rng *rand.Rand, mapH, prev, maxHeight, size float64) []waypoint {
	lo := int(mapH / 20)
	hi := int(maxHeight)
	h := float64(lo)
	if hi > lo {
		h = float64(lo + rng.Intn(hi-lo)) // #nosec G404 -- match RNG, not crypto
	}
	return []waypoint{{size / 4, h}, {size, h}}
}
