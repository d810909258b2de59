package markup

import (
	"iter"
	"math"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
)

// MaxBatchInstances is the number of dashes one batch can hold. It is the
// length of the shader's per-instance uniform arrays.
const MaxBatchInstances = 16

// Height and thickness of every box, in the size vector handed to the
// shader.
const (
	dashHeight    = 3
	dashThickness = 0.15
)

// uniformSize is the size of [RenderBatch.UniformData]: the size vector
// followed by three arrays of MaxBatchInstances vec4s.
const uniformSize = (1 + 3*MaxBatchInstances) * 16

// BatchOpts configures [BuildBatches].
type BatchOpts struct {
	// Elevation is the height of the road surface the dashes are painted on.
	Elevation float64 `toml:"elevation"`
}

// RenderBatch is up to [MaxBatchInstances] dashes of one rounded length,
// ready for instanced drawing.
type RenderBatch struct {
	// Length is the rounded length shared by all dashes of the batch.
	Length float64
	// Size is (length, height, thickness, 0).
	Size [4]float32
	// Locations holds (x, elevation, y, angle) per dash.
	Locations [][4]float32
	// Indices holds (0, 0, 0, 1) per dash.
	Indices [][4]float32
	// Colors holds each dash's colour with components in [0, 1].
	Colors [][4]float32
	Mesh   *Mesh
}

// Count returns the number of dashes in b.
func (b *RenderBatch) Count() int { return len(b.Locations) }

// Release drops the batch's mesh and instance data. A released batch must
// not be drawn.
func (b *RenderBatch) Release() {
	b.Mesh = nil
	b.Locations, b.Indices, b.Colors = nil, nil, nil
}

// Released reports whether [RenderBatch.Release] has been called.
func (b *RenderBatch) Released() bool { return b.Mesh == nil }

// UniformData encodes the size vector and the per-instance arrays as one
// uniform block, padding every array to [MaxBatchInstances] entries.
func (b *RenderBatch) UniformData() []byte {
	out := make([]byte, 0, uniformSize)
	out = appendFloats(out, b.Size[:]...)
	for _, arr := range [...][][4]float32{b.Locations, b.Indices, b.Colors} {
		for i := range MaxBatchInstances {
			var v [4]float32
			if i < len(arr) {
				v = arr[i]
			}
			out = appendFloats(out, v[:]...)
		}
	}
	return out
}

// BatchUniformLayout describes [RenderBatch.UniformData] to a bind group
// layout.
func BatchUniformLayout() gputypes.BufferBindingLayout {
	return gputypes.BufferBindingLayout{
		Type:           gputypes.BufferBindingTypeUniform,
		MinBindingSize: uniformSize,
	}
}

// RoundLength returns the length bucket of a dash. Lengths are truncated to
// hundredths and then rounded to the nearest tenth, with .05 rounding up.
func RoundLength(length float64) float64 {
	// The epsilon keeps lengths such as 1.15, whose product with 100 falls
	// just short of an integer, in the bucket their decimal value implies.
	hundredths := int(math.Floor(length*100 + 1e-9))
	tenths := (hundredths + 5) / 10
	return float64(tenths) / 10
}

// BuildBatches groups dashes by [RoundLength] and yields one batch per
// [MaxBatchInstances] dashes of a group. Groups appear in the order their
// first dash appears in dashes.
//
// Batches are built one at a time as the sequence is consumed. The caller
// owns every yielded batch.
func BuildBatches(dashes []Dash, opts BatchOpts) iter.Seq[*RenderBatch] {
	return func(yield func(*RenderBatch) bool) {
		var keys []float64
		groups := map[float64][]Dash{}
		for _, d := range dashes {
			if !d.valid() {
				Logger().Debug("markup: skipping degenerate dash", "dash", d)
				continue
			}
			key := RoundLength(d.Length)
			if _, ok := groups[key]; !ok {
				keys = append(keys, key)
			}
			groups[key] = append(groups[key], d)
		}

		for _, key := range keys {
			group := groups[key]
			for len(group) > 0 {
				n := min(len(group), MaxBatchInstances)
				b := newRenderBatch(group[:n], key, opts)
				Logger().Debug("markup: batch built", "length", key, "instances", n)
				if !yield(b) {
					return
				}
				group = group[n:]
			}
		}
	}
}

func newRenderBatch(dashes []Dash, length float64, opts BatchOpts) *RenderBatch {
	b := &RenderBatch{
		Length:    length,
		Size:      [4]float32{float32(length), dashHeight, dashThickness, 0},
		Locations: make([][4]float32, len(dashes)),
		Indices:   make([][4]float32, len(dashes)),
		Colors:    make([][4]float32, len(dashes)),
	}
	for i, d := range dashes {
		b.Locations[i] = [4]float32{
			float32(d.Position.X),
			float32(opts.Elevation),
			float32(d.Position.Y),
			math32.Remainder(float32(d.Angle), 2*math32.Pi),
		}
		b.Indices[i] = [4]float32{0, 0, 0, 1}
		b.Colors[i] = [4]float32{
			float32(d.Color.R) / 255,
			float32(d.Color.G) / 255,
			float32(d.Color.B) / 255,
			float32(d.Color.A) / 255,
		}
	}
	b.Mesh = NewBoxMesh(len(dashes), b.Size[0], b.Size[1], b.Size[2])
	return b
}
