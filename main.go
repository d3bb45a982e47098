package main

import "github.com/xvierd/daylog/cmd"

func main() {
	cmd.Execute()
}
