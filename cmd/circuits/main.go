// Command circuits reads 3-D point records and prints the two clustering answers:
// the product of the three largest circuits after a fixed number of merges, and
// the X product of the pair that finally joins every point into one circuit.
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
