// Command qverify checks candidate solutions to quadratic binary
// optimization problems and reports feasibility, objective value, optimality
// gap and bit-flip sensitivity.
//
// Exit codes follow the verification outcome: 0 feasible, 1 infeasible,
// 2 parse or runtime error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
