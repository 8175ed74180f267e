package main

import "github.com/mamadbah2/herd/internal/cli"

func main() {
	cli.Execute()
}
