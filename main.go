package main

import (
	"taxseq/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
