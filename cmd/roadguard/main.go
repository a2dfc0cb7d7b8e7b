package main

import (
	"github.com/roadguard/roadguard/internal/cli"
)

var (
	version = "0.3.0"
)

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
