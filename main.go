package main

import "github.com/jjenkins/volume/cmd"

func main() {
	cmd.Execute()
}
