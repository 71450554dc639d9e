package core

// Matrix is a 4x4 homogeneous transform matrix. The inverse is computed once
// at construction and carried alongside the data, since shading needs the
// inverse far more often than the matrix is rebuilt. Matrices are immutable
// once built.
type Matrix struct {
	data    [4][4]float64
	inverse [4][4]float64
}

var identityData = [4][4]float64{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Identity is the shared identity transform.
var Identity = Matrix{data: identityData, inverse: identityData}

// NewMatrix creates a Matrix from a 4x4 array, computing and caching its
// inverse by cofactor expansion.
func NewMatrix(data [4][4]float64) Matrix {
	var inverse [4][4]float64
	d := determinant(data, 4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inverse[col][row] = cofactor(data, row, col, 3) / d
		}
	}
	return Matrix{data: data, inverse: inverse}
}

// At returns the element at the given row and column.
func (m Matrix) At(row, col int) float64 {
	return m.data[row][col]
}

// Inverse returns the inverse of the matrix. This is free: the inverse was
// computed at construction, so the call just swaps the two cached arrays.
func (m Matrix) Inverse() Matrix {
	return Matrix{data: m.inverse, inverse: m.data}
}

// Transpose returns the matrix flipped over its diagonal. The cached inverse
// is transposed with it, so the inverse-transpose used for normal vectors is
// also free.
func (m Matrix) Transpose() Matrix {
	var d, inv [4][4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			d[row][col] = m.data[col][row]
			inv[row][col] = m.inverse[col][row]
		}
	}
	return Matrix{data: d, inverse: inv}
}

// IsInvertible reports whether the matrix has a non-zero determinant.
func (m Matrix) IsInvertible() bool {
	return determinant(m.data, 4) != 0
}

// Mul returns the matrix product m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	return NewMatrix(mulArrays(m.data, other.data))
}

// MulPoint applies the matrix to a point (w=1).
func (m Matrix) MulPoint(p Point) Point {
	return Point{
		X: m.data[0][0]*p.X + m.data[0][1]*p.Y + m.data[0][2]*p.Z + m.data[0][3],
		Y: m.data[1][0]*p.X + m.data[1][1]*p.Y + m.data[1][2]*p.Z + m.data[1][3],
		Z: m.data[2][0]*p.X + m.data[2][1]*p.Y + m.data[2][2]*p.Z + m.data[2][3],
	}
}

// MulVector applies the matrix to a vector (w=0), ignoring translation.
func (m Matrix) MulVector(v Vector) Vector {
	return Vector{
		X: m.data[0][0]*v.X + m.data[0][1]*v.Y + m.data[0][2]*v.Z,
		Y: m.data[1][0]*v.X + m.data[1][1]*v.Y + m.data[1][2]*v.Z,
		Z: m.data[2][0]*v.X + m.data[2][1]*v.Y + m.data[2][2]*v.Z,
	}
}

// Equal reports whether two matrices are equal within Epsilon.
func (m Matrix) Equal(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEqual(m.data[row][col], other.data[row][col]) {
				return false
			}
		}
	}
	return true
}

func mulArrays(a, b [4][4]float64) [4][4]float64 {
	var out [4][4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = a[row][0]*b[0][col] +
				a[row][1]*b[1][col] +
				a[row][2]*b[2][col] +
				a[row][3]*b[3][col]
		}
	}
	return out
}

// determinant computes the determinant of the top-left size x size corner by
// cofactor expansion along the first row, bottoming out at 2x2.
func determinant(a [4][4]float64, size int) float64 {
	if size == 2 {
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}
	det := 0.0
	for col := 0; col < size; col++ {
		det += a[0][col] * cofactor(a, 0, col, size-1)
	}
	return det
}

// subMatrix removes the given row and column, packing the remainder into the
// top-left corner.
func subMatrix(a [4][4]float64, dropRow, dropCol int) [4][4]float64 {
	var out [4][4]float64
	or := 0
	for row := 0; row < 4; row++ {
		if row == dropRow {
			continue
		}
		oc := 0
		for col := 0; col < 4; col++ {
			if col == dropCol {
				continue
			}
			out[or][oc] = a[row][col]
			oc++
		}
		or++
	}
	return out
}

func minor(a [4][4]float64, row, col, size int) float64 {
	return determinant(subMatrix(a, row, col), size)
}

func cofactor(a [4][4]float64, row, col, size int) float64 {
	m := minor(a, row, col, size)
	if (row+col)%2 == 1 {
		return -m
	}
	return m
}
