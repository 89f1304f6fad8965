package main

import "github.com/Project-Sylos/Mimic/internal/cli"

func main() {
	cli.Execute()
}
