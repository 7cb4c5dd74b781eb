package main

import "github.com/mcoot/clockface/internal/cli"

func main() {
	cli.Execute()
}
