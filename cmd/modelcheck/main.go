// Command modelcheck validates JSON and YAML documents against modelcheck
// models.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "modelcheck:", err)
		os.Exit(exitUsage)
	}
}
