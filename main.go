package main

import "github.com/josephlewis42/debsh/cmd"

func main() {
	cmd.Execute()
}
