package main

import "github.com/ingo-eichhorst/projectmap/cmd"

func main() {
	cmd.Execute()
}
