package main

import (
	"github.com/ShivMunagala/pydoccheck/internal/cli"
)

func main() {
	cli.Execute()
}
