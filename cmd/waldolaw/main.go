package main

import (
	"github.com/andrescamacho/waldolaw-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
