package main

import "bankist/cmd"

func main() {
	cmd.Execute()
}
