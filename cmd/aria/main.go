// Command aria decorates widget blocks in HTML pages and previews them.
package main

import (
	"os"

	"github.com/go-drift/aria/cmd/aria/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
