package main

import "snipkit/cmd/snipkit-cli/cmd"

func main() {
	cmd.Execute()
}
