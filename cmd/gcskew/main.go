// cmd/gcskew/main.go
package main

import (
	"os"

	"clumpfind/internal/skewapp"
)

func main() {
	os.Exit(skewapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
