// Command truplc is the TruPL compiler front-end driver.
package main

import (
	"fmt"
	"os"

	"github.com/hieule22/trupl-go/cmd/truplc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
