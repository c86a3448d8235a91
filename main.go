package main

import "github.com/chriserin/gherkin2md/cmd"

func main() {
	cmd.Execute()
}
