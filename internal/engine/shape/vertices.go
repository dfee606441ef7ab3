package shape

// VertexCount is the number of vertices in a cube triangle list.
const VertexCount = 36

// VertexStride is the number of floats per vertex: position then normal.
const VertexStride = 6

// CubeVertices is the unit cube centered at the origin as a triangle list of
// interleaved position (xyz) and face normal (xyz). The light marker uses the
// same table.
var CubeVertices = [VertexCount * VertexStride]float32{
	// back (-Z)
	-0.5, -0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,

	// front (+Z)
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,

	// left (-X)
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,

	// right (+X)
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,

	// bottom (-Y)
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,

	// top (+Y)
	-0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
}
