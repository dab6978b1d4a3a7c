package main

import (
	"coopbingo/internal/cli"
)

func main() {
	cli.Execute()
}
