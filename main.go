package main

import "github.com/diorchen/shell/cmd"

func main() {
	cmd.Execute()
}
