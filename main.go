package main

import "github.com/jcdickinson/llmsgen/cmd"

func main() {
	cmd.Execute()
}
