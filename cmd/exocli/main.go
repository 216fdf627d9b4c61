package main

import "github.com/acme/exotel-go/internal/cli"

func main() {
	cli.Execute()
}
