package main

import "github.com/robalobadob/wordle/apps/go-wordle/internal/cli"

func main() {
	cli.Execute()
}
