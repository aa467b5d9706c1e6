package main

import "list-control/cmd"

func main() {
	cmd.Execute()
}
