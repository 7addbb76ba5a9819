package main

import "multichain-send/cmd/multichain-cli/cmd"

func main() {
	cmd.Execute()
}
