package main

import "github.com/OpenTraceLab/CopperForge/cmd/copperforge/cmd"

func main() {
	cmd.Execute()
}
