// Command codeowners resolves, generates, and validates CODEOWNERS
// ownership across a monorepo.
package main

import (
	"fmt"
	"os"

	"github.com/ownerscan/codeowners/cmd/codeowners/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
