package main

import "github.com/ib-77/periodgate/internal/cli"

func main() {
	cli.Execute()
}
