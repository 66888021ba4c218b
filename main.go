package main

import "tagmill/cmd"

func main() {
	cmd.Execute()
}
