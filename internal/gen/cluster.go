package gen

import (
	"math"

	"overgrowth/internal/terrain"
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// ClusterSpec configures one cluster pass of a single terrain type.
type ClusterSpec struct {
	Type     terrain.Type
	Clusters int
	SizeMin  int
	SizeMax  int

	// SpacingFactor scales min(cols, rows) into the minimum center-to-center
	// distance between clusters of this type. Zero disables the constraint.
	SpacingFactor float64

	// DensityVeto skips candidate centers whose surrounding disk already
	// carries more than densityLimit of this terrain type.
	DensityVeto bool
}

const (
	centerMargin   = 5
	growthMargin   = 3
	maxCenterTries = 50
	densityLimit   = 0.25
)

var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Clusters paints spec.Clusters organically-shaped regions onto the grid
// using randomized flood fill and returns the centers that were placed.
// Placement exhaustion is not an error: clusters that find no valid center
// within the attempt budget are skipped and reported through the log hook.
func Clusters(ctx *Context, spec ClusterSpec) []Point {
	if spec.Clusters <= 0 {
		return nil
	}
	if spec.SizeMax < spec.SizeMin {
		spec.SizeMax = spec.SizeMin
	}

	minDist := 0.0
	if spec.SpacingFactor > 0 {
		minDist = spec.SpacingFactor * float64(min(ctx.Grid.Cols, ctx.Grid.Rows))
	}

	centers := make([]Point, 0, spec.Clusters)
	budget := 3 * spec.Clusters
	for attempts := 0; len(centers) < spec.Clusters && attempts < budget; attempts++ {
		center, ok := findCenter(ctx, spec, centers, minDist)
		if !ok {
			ctx.logf("gen: no center for %s cluster %d after %d tries, skipping",
				spec.Type, len(centers)+1, maxCenterTries)
			continue
		}
		size := ctx.RNG.IntRange(spec.SizeMin, spec.SizeMax)
		growCluster(ctx, spec.Type, center, size)
		centers = append(centers, center)
	}
	return centers
}

// findCenter searches the grid interior for an unprocessed candidate that
// honors the spacing and density constraints.
func findCenter(ctx *Context, spec ClusterSpec, placed []Point, minDist float64) (Point, bool) {
	g := ctx.Grid
	for try := 0; try < maxCenterTries; try++ {
		x := ctx.RNG.IntRange(centerMargin, g.Cols-1-centerMargin)
		y := ctx.RNG.IntRange(centerMargin, g.Rows-1-centerMargin)
		if ctx.isProcessed(x, y) {
			continue
		}
		if minDist > 0 && tooClose(placed, x, y, minDist) {
			continue
		}
		if spec.DensityVeto && localDensity(ctx, spec.Type, x, y, spec.SizeMax) > densityLimit {
			continue
		}
		return Point{X: x, Y: y}, true
	}
	return Point{}, false
}

func tooClose(placed []Point, x, y int, minDist float64) bool {
	for _, p := range placed {
		dx := float64(p.X - x)
		dy := float64(p.Y - y)
		if math.Hypot(dx, dy) < minDist {
			return true
		}
	}
	return false
}

// localDensity reports the fraction of cells within radius around (cx, cy)
// that already hold the given terrain type.
func localDensity(ctx *Context, t terrain.Type, cx, cy, radius int) float64 {
	if radius <= 0 {
		return 0
	}
	sampled, hits := 0, 0
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			tile, ok := ctx.Grid.TileAt(cx+dx, cy+dy)
			if !ok {
				continue
			}
			sampled++
			if tile == t {
				hits++
			}
		}
	}
	if sampled == 0 {
		return 0
	}
	return float64(hits) / float64(sampled)
}

// growCluster seed-fills up to size cells of t starting at center. The work
// list is popped at a uniformly random index rather than FIFO/LIFO, which
// rounds the shapes out. Neighbors are accepted with a noise-modulated
// probability, so a cluster may terminate smaller than requested when every
// frontier cell runs out of willing neighbors.
func growCluster(ctx *Context, t terrain.Type, center Point, size int) int {
	g := ctx.Grid
	g.SetTile(center.X, center.Y, t)
	ctx.markProcessed(center.X, center.Y)
	placed := 1

	work := []Point{center}
	for len(work) > 0 && placed < size {
		i := ctx.RNG.IntN(len(work))
		cell := work[i]
		work[i] = work[len(work)-1]
		work = work[:len(work)-1]

		for _, off := range shuffledOffsets(ctx) {
			if placed >= size {
				break
			}
			nx, ny := cell.X+off.X, cell.Y+off.Y
			if nx < growthMargin || nx >= g.Cols-growthMargin ||
				ny < growthMargin || ny >= g.Rows-growthMargin {
				continue
			}
			if ctx.isProcessed(nx, ny) {
				continue
			}
			p := 0.7 + 0.3*ctx.Noise.Noise(float64(nx)*0.2, float64(ny)*0.2)
			if !ctx.RNG.Chance(p) {
				continue
			}
			g.SetTile(nx, ny, t)
			ctx.markProcessed(nx, ny)
			placed++
			work = append(work, Point{X: nx, Y: ny})
		}
	}
	return placed
}

func shuffledOffsets(ctx *Context) [8]Point {
	offs := neighborOffsets
	ctx.RNG.Shuffle(len(offs), func(i, j int) { offs[i], offs[j] = offs[j], offs[i] })
	return offs
}

// Undergrowth runs the secondary bush pass: open cells bordering placed
// forest sprout bush with a probability that rises with the number of
// forest neighbors. It is independent of the cluster algorithm and does not
// touch the processed bitmap.
func Undergrowth(ctx *Context, chance float64) {
	if chance <= 0 {
		return
	}
	g := ctx.Grid
	for y := growthMargin; y < g.Rows-growthMargin; y++ {
		for x := growthMargin; x < g.Cols-growthMargin; x++ {
			tile, _ := g.TileAt(x, y)
			if tile != terrain.Floor && tile != terrain.Meadow {
				continue
			}
			forested := 0
			for _, off := range neighborOffsets {
				if n, ok := g.TileAt(x+off.X, y+off.Y); ok && n == terrain.Forest {
					forested++
				}
			}
			if forested == 0 {
				continue
			}
			if ctx.RNG.Chance(chance * float64(forested) / 8) {
				g.SetTile(x, y, terrain.Bush)
			}
		}
	}
}
