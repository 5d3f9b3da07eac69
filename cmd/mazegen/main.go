// SPDX-License-Identifier: MIT

// Command mazegen carves, solves and draws random perfect mazes.
//
//	mazegen carve --width 20 --height 10 --algorithm prim --solve
//	mazegen version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
