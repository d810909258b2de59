package markup

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
)

// A box is drawn with four vertices per face so that every face can carry
// its own attributes.
const (
	boxVertexCount = 24
	boxIndexCount  = 36
)

// meshBound is the half extent of the bounds given to every mesh. The
// shader moves the instances, so the mesh's own bounds must never cull
// them.
const meshBound = 100000

// boxFaces lists, per face, the box corners of its four vertices. Corners
// are numbered by the signs of their (length, width, height) coordinates:
// 0 --+, 1 +-+, 2 +--, 3 ---, 4 -++, 5 +++, 6 ++-, 7 -+-.
var boxFaces = [boxVertexCount]int{
	1, 3, 2, 0, // bottom
	5, 7, 4, 6, // top
	1, 4, 0, 5, // front
	0, 7, 3, 4, // left
	3, 6, 2, 7, // back
	2, 5, 1, 6, // right
}

var boxTriangles = [boxIndexCount]uint16{
	0, 1, 2, 1, 0, 3,
	4, 5, 6, 5, 4, 7,
	8, 9, 10, 9, 8, 11,
	12, 13, 14, 13, 12, 15,
	16, 17, 18, 17, 16, 19,
	20, 21, 22, 21, 20, 23,
}

// Vertex is one vertex of a box mesh.
type Vertex struct {
	Position [3]float32
	UV       [2]float32
	// Color is white with an alpha of 16·i, which tells the shader that the
	// vertex belongs to instance i.
	Color [4]float32
}

// vertexStride is the size of an encoded [Vertex].
const vertexStride = (3 + 2 + 4) * 4

// Mesh holds count copies of a box, one per instance of a [RenderBatch].
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
	// Bounds is the minimum and maximum corner of the mesh's bounding box.
	Bounds [2][3]float32
}

// NewBoxMesh returns a mesh of count boxes of the given length, height and
// width, each centred on the origin. count is clamped to
// [0, MaxBatchInstances], the number of instances the shader can tell apart.
func NewBoxMesh(count int, length, height, width float32) *Mesh {
	count = min(max(count, 0), MaxBatchInstances)
	l, h, w := math32.Abs(length)*0.5, math32.Abs(height)*0.5, math32.Abs(width)*0.5
	corners := [8][3]float32{
		{-l, -w, h},
		{l, -w, h},
		{l, -w, -h},
		{-l, -w, -h},
		{-l, w, h},
		{l, w, h},
		{l, w, -h},
		{-l, w, -h},
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, boxVertexCount*count),
		Indices:  make([]uint16, 0, boxIndexCount*count),
		Bounds: [2][3]float32{
			{-meshBound, -meshBound, -meshBound},
			{meshBound, meshBound, meshBound},
		},
	}
	for i := range count {
		c := instanceColor(i)
		for _, corner := range boxFaces {
			m.Vertices = append(m.Vertices, Vertex{Position: corners[corner], Color: c})
		}
		base := uint16(boxVertexCount * i)
		for _, idx := range boxTriangles {
			m.Indices = append(m.Indices, idx+base)
		}
	}
	return m
}

func instanceColor(i int) [4]float32 {
	return [4]float32{1, 1, 1, float32(uint8(16*i)) / 255}
}

// Instances returns the number of boxes in m.
func (m *Mesh) Instances() int { return len(m.Vertices) / boxVertexCount }

// VertexData encodes the vertices in the layout described by
// [MeshVertexLayout].
func (m *Mesh) VertexData() []byte {
	out := make([]byte, 0, len(m.Vertices)*vertexStride)
	for _, v := range m.Vertices {
		out = appendFloats(out, v.Position[:]...)
		out = appendFloats(out, v.UV[:]...)
		out = appendFloats(out, v.Color[:]...)
	}
	return out
}

// IndexData encodes the indices as little-endian 16-bit integers.
func (m *Mesh) IndexData() []byte {
	out := make([]byte, 0, len(m.Indices)*2)
	for _, idx := range m.Indices {
		out = binary.LittleEndian.AppendUint16(out, idx)
	}
	return out
}

func appendFloats(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

// Buffer usages for uploading a batch.
var (
	VertexBufferUsage  = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	IndexBufferUsage   = gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
	UniformBufferUsage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
)

// MeshVertexLayout describes [Mesh.VertexData] to a render pipeline.
func MeshVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // uv
				{Format: gputypes.VertexFormatFloat32x4, Offset: 20, ShaderLocation: 2}, // instance tag
			},
		},
	}
}

// MeshIndexFormat returns the format of [Mesh.IndexData].
func MeshIndexFormat() gputypes.IndexFormat { return gputypes.IndexFormatUint16 }

// MeshPrimitiveState returns the primitive state the box meshes are built
// for. Boxes are drawn from both sides.
func MeshPrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}
