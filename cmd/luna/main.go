package main

import "github.com/terraincognita07/luna/internal/cli"

func main() {
	cli.Execute()
}
