package main

import (
	"os"

	"github.com/meikuraledutech/decision/console"
)

func main() {
	os.Exit(console.Run(os.Args[1:], os.Stdout, os.Stderr))
}
