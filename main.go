package main

import "github.com/agentic-research/afstext/cmd"

func main() {
	cmd.Execute()
}
