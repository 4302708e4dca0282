package main

import (
	"github.com/kwanchai/cleanbook/internal/cli"
)

func main() {
	cli.Execute()
}
