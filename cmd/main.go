package main

import cmd "github.com/ebenson/strips/cmd/strips"

func main() {
	cmd.Execute()
}
