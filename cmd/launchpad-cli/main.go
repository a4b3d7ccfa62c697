package main

import "launchpad/cmd/launchpad-cli/cmd"

func main() {
	cmd.Execute()
}
