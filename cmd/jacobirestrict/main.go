// SPDX-License-Identifier: MIT

// Command jacobirestrict reconstructs Jacobi forms of lattice index from
// scalar Jacobi forms and inspects the restriction machinery.
//
//	jacobirestrict solve --problem a2.yaml
//	jacobirestrict vectors --gram "2,1;1,2" --extra 2
//	jacobirestrict matrix --gram "2,1;1,2" --vector "-1,0" --bound 5
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
