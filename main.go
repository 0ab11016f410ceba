package main

import "aboutctl/internal/cli"

func main() {
	cli.Execute()
}
