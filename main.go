package main

import "github.com/phoebusgraph/petgraph/cmd"

func main() {
	cmd.Execute()
}
