package problem_test

import (
	"fmt"

	"github.com/katalvlaran/jacobi/problem"
)

// ExampleParse solves a problem given inline.
func ExampleParse() {
	p, err := problem.Parse([]byte(`
gram: [[2]]
weight: 4
bound: 2
dimension: 1
scalar:
  - index: 1
    bound: 2
    forms:
      - {"0,0": "1", "1,0": "126", "1,1": "56"}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	basis, err := p.Solve()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(basis), basis[0].Vector())
	// Output:
	// 1 (1, 126, 56)
}
