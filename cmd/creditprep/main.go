// Command creditprep cleans raw SME credit data and prepares balanced train
// and test sets from it.
package main

import (
	"fmt"
	"os"
)

func main() {
	c := newCLI(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCommand(c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "creditprep:", err)
		os.Exit(1)
	}
}
