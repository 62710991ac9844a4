// Command hxattrs generates Element and SpreadAttrs code for hxattrs props
// structs and inspects the attribute vocabulary.
package main

import (
	"fmt"
	"os"
)

const version = "0.2.0"

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
