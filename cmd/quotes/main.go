package main

import (
	"github.com/NVIDIA/quotes-api/pkg/cli"
)

func main() {
	cli.Execute()
}
