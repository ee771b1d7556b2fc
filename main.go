package main

import "m3ushuffle/cmd"

func main() {
	cmd.Execute()
}
