package main

import (
	"os"

	"github.com/cidiff/cidiff/internal/cmd"
)

// cidiffVersion is overridden at build time via ldflags.
var cidiffVersion = "0.1.0"

func main() {
	os.Exit(cmd.Execute(cidiffVersion))
}
