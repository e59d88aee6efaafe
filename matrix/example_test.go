package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matrix2d/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMatrix_RowViews
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Fill a 3×3 matrix with 0..8, double the first element of every row through
//	row views, then poke two cells and print the result several ways.
//
// Complexity: O(R·C)
func ExampleMatrix_RowViews() {
	m, err := matrix.New[int](3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for k := range m.Data() {
		m.Data()[k] = k
	}
	for _, row := range m.RowViews() {
		p, _ := row.Ref(0, 0)
		*p *= 2
	}
	_ = m.Set(2, 2, 44)
	_ = m.SetIndex(matrix.Index{Row: 0, Col: 0}, 100)

	fmt.Printf("See matrix2d:\n%v\n", m)

	for _, row := range m.RowViews() {
		var parts []string
		for v := range row.Values() {
			parts = append(parts, fmt.Sprint(v))
		}
		fmt.Println(strings.Join(parts, " "))
	}

	fmt.Println(matrix.Format[int](m, matrix.WithDelimiter(","), matrix.WithPad(0)))
	// Output:
	// See matrix2d:
	// 100 1  2
	//   6 4  5
	//  12 7 44
	// 100 1 2
	// 6 4 5
	// 12 7 44
	// 100,1, 2
	//   6,4, 5
	//  12,7,44
}

// ExampleView_Submatrix shows that a sub-view aliases its owner.
func ExampleView_Submatrix() {
	m, _ := matrix.New[int](4, 5)
	for k := range m.Data() {
		m.Data()[k] = k
	}

	sub, err := m.View().Submatrix(1, 2, 1, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = sub.Set(0, 0, -1)

	fmt.Printf("sub %s, stride %d:\n%v\n", sub.Shape(), sub.Stride(), sub)
	fmt.Printf("owner:\n%v\n", m)

	_, err = m.Submatrix(3, 2, 0, 1)
	fmt.Println(err)
	// Output:
	// sub 2x3, stride 5:
	// -1  7  8
	// 11 12 13
	// owner:
	//  0  1  2  3  4
	//  5 -1  7  8  9
	// 10 11 12 13 14
	// 15 16 17 18 19
	// Matrix.Submatrix(3,2,0,1): matrix: index out of range
}

// ExampleFormat renders floats with a shared width and a custom delimiter.
func ExampleFormat() {
	m, _ := matrix.FromRows([][]float64{{1.5, -2}, {0.25, 10}})

	fmt.Println("grid:")
	fmt.Println(matrix.Format[float64](m,
		matrix.WithVerb("%.2f"),
		matrix.WithWidthPolicy(matrix.Global),
		matrix.WithDelimiter(" | "),
	))
	// Output:
	// grid:
	//  1.50 | -2.00
	//  0.25 | 10.00
}
