package main

import "github.com/ajanata/notepad/cmd/notepad-sim/cmd"

func main() {
	cmd.Execute()
}
