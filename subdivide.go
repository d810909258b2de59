package markup

import "iter"

// SubdivideOpts bounds the adaptive subdivision of solid lines.
type SubdivideOpts struct {
	// MaxDepth is the number of times a piece may be halved.
	MaxDepth int `toml:"max_depth"`
	// MinAngleDelta is the turning, in degrees, above which a piece is too
	// curvy to be drawn as one dash.
	MinAngleDelta float64 `toml:"min_angle_delta"`
	// MinLength is the length below which curvature is ignored.
	MinLength float64 `toml:"min_length"`
	// MaxLength is the length above which a piece is always split.
	MaxLength float64 `toml:"max_length"`
}

var DefaultSubdivideOpts = SubdivideOpts{
	MaxDepth:      5,
	MinAngleDelta: 5,
	MinLength:     1,
	MaxLength:     10,
}

type subdivideItem struct {
	tr         Trajectory
	depth      int
	deltaAngle float64
}

// Subdivide splits tr into pieces that are close enough to straight to be
// drawn as single dashes. Pieces are yielded in parametric order.
//
// A piece is halved while it is below MaxDepth and either turns by more than
// MinAngleDelta while being at least MinLength long, or is longer than
// MaxLength. The root is always examined. To avoid chasing numerical noise
// on nearly straight curves, the root is only split when it, or the sum of
// its halves, turns by more than MinAngleDelta.
func Subdivide(tr Trajectory, opts SubdivideOpts) iter.Seq[Trajectory] {
	return func(yield func(Trajectory) bool) {
		stack := []subdivideItem{{tr: tr, deltaAngle: tr.DeltaAngle()}}
		for len(stack) > 0 {
			item := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if first, second, ok := opts.split(item); ok {
				// LIFO: push the second half first so the first is emitted first.
				stack = append(stack, second, first)
				continue
			}
			if !yield(item.tr) {
				return
			}
		}
	}
}

func (opts SubdivideOpts) split(item subdivideItem) (first, second subdivideItem, ok bool) {
	length := item.tr.Magnitude()
	curvy := opts.MinAngleDelta < item.deltaAngle && opts.MinLength <= length
	if item.depth >= opts.MaxDepth || !(curvy || opts.MaxLength < length || item.depth == 0) {
		return first, second, false
	}

	a, b := item.tr.Divide()
	first = subdivideItem{tr: a, depth: item.depth + 1, deltaAngle: a.DeltaAngle()}
	second = subdivideItem{tr: b, depth: item.depth + 1, deltaAngle: b.DeltaAngle()}
	if item.depth != 0 ||
		opts.MinAngleDelta < item.deltaAngle ||
		opts.MinAngleDelta < first.deltaAngle+second.deltaAngle {
		return first, second, true
	}
	return first, second, false
}
