package pathfinding

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// pixelsPerCostUnit converts pixel length to cost units: 100 px = 1 unit.
	pixelsPerCostUnit = 100.0

	// Sample counts used when integrating terrain cost along an edge.
	straightEdgeSamples = 20
	curvedEdgeSamples   = 30
)

// TerrainType defines a paintable terrain category and its movement cost multiplier.
type TerrainType struct {
	ID         string  `json:"id"`
	Multiplier float64 `json:"multiplier"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
}

// Terrain is a discretized cost surface over a map image. Cells hold a terrain
// type id, or "" when unpainted so downstream code can tell "never painted"
// from "explicitly clear terrain". Cell mapping is proportional to the image
// dimensions given at query time, so image dimensions are immutable once a
// terrain exists: a changed image size silently misaligns the grid.
type Terrain struct {
	GridWidth  int           `json:"gridWidth"`
	GridHeight int           `json:"gridHeight"`
	Grid       []string      `json:"grid"` // row-major, len = GridWidth*GridHeight
	Types      []TerrainType `json:"types"`
}

// NewTerrain creates an all-unset grid over an image, preserving the image
// aspect ratio with longestSide cells along the longer image dimension.
func NewTerrain(imageWidth, imageHeight float64, longestSide int) *Terrain {
	gw, gh := longestSide, longestSide
	if imageWidth >= imageHeight {
		gh = int(math.Round(float64(longestSide) * imageHeight / imageWidth))
	} else {
		gw = int(math.Round(float64(longestSide) * imageWidth / imageHeight))
	}
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}
	return &Terrain{
		GridWidth:  gw,
		GridHeight: gh,
		Grid:       make([]string, gw*gh),
	}
}

// CellAt maps an image-space position to grid coordinates, clamped to the grid.
func (t *Terrain) CellAt(imageX, imageY, imageWidth, imageHeight float64) (int, int) {
	cx := int(imageX / imageWidth * float64(t.GridWidth))
	cy := int(imageY / imageHeight * float64(t.GridHeight))
	return clampInt(cx, 0, t.GridWidth-1), clampInt(cy, 0, t.GridHeight-1)
}

// Paint returns a copy of the terrain with every cell within radius (in cell
// units) of the center cell set to typeID, or cleared when typeID is empty.
// The receiver is untouched; history and undo are the caller's concern.
func (t *Terrain) Paint(centerX, centerY int, radius float64, typeID string) *Terrain {
	out := &Terrain{
		GridWidth:  t.GridWidth,
		GridHeight: t.GridHeight,
		Grid:       append([]string(nil), t.Grid...),
		Types:      t.Types,
	}

	r := int(math.Ceil(radius))
	for y := clampInt(centerY-r, 0, t.GridHeight-1); y <= clampInt(centerY+r, 0, t.GridHeight-1); y++ {
		for x := clampInt(centerX-r, 0, t.GridWidth-1); x <= clampInt(centerX+r, 0, t.GridWidth-1); x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			if dx*dx+dy*dy <= radius*radius {
				out.Grid[y*t.GridWidth+x] = typeID
			}
		}
	}
	return out
}

// CostAt returns the cost multiplier of the cell containing an image-space
// position. Unset cells and unknown type ids are neutral (multiplier 1).
func (t *Terrain) CostAt(imageX, imageY, imageWidth, imageHeight float64) float64 {
	cx, cy := t.CellAt(imageX, imageY, imageWidth, imageHeight)
	return t.multiplier(t.Grid[cy*t.GridWidth+cx])
}

// PathCost integrates terrain cost along a polyline: each segment is weighted
// by its midpoint's multiplier and its pixel length, and the sum is scaled to
// cost units. Midpoint sampling under-samples terrain transitions inside a
// segment, so callers supply finely subdivided polylines.
func (t *Terrain) PathCost(points orb.LineString, imageWidth, imageHeight float64) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		midX := (a[0] + b[0]) / 2
		midY := (a[1] + b[1]) / 2
		total += planar.Distance(a, b) * t.CostAt(midX, midY, imageWidth, imageHeight)
	}
	return total / pixelsPerCostUnit
}

// EdgeCost computes the routing cost of an edge between two positions. Without
// terrain the cost is pure pixel distance scaled to cost units; with terrain
// the edge's actual shape is sampled and integrated. Either way the result is
// rounded to one decimal.
func EdgeCost(shape Shape, from, to orb.Point, terrain *Terrain, imageWidth, imageHeight float64) float64 {
	if terrain == nil {
		return round1(planar.Distance(from, to) / pixelsPerCostUnit)
	}
	if shape == nil {
		shape = Straight{}
	}
	segments := straightEdgeSamples
	if _, curved := shape.(Curve); curved {
		segments = curvedEdgeSamples
	}
	return round1(terrain.PathCost(shape.Sample(from, to, segments), imageWidth, imageHeight))
}

// multiplier looks up the cost multiplier for a terrain type id.
func (t *Terrain) multiplier(typeID string) float64 {
	if typeID == "" {
		return 1
	}
	for _, tt := range t.Types {
		if tt.ID == typeID {
			return tt.Multiplier
		}
	}
	return 1
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
