package main

import "github.com/famomatic/ytscribe/internal/cli"

func main() {
	cli.Execute()
}
