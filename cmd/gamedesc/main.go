package main

import "github.com/mydehq/gamedesc/internal/cli"

func main() {
	cli.Execute()
}
