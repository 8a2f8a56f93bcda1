package main

import "github.com/bloodmagesoftware/foldout/cmd"

func main() {
	cmd.Execute()
}
