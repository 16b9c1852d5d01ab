package main

import "github.com/deppfellow/lightbnb/cmd/lightbnb/commands"

func main() {
	commands.Execute()
}
