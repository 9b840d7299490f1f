// cmd/freqwords/main.go
package main

import (
	"os"

	"clumpfind/internal/freqapp"
)

func main() {
	os.Exit(freqapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
