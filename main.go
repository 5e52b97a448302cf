package main

import "github.com/jansmrcka/vitrine/cmd"

func main() {
	cmd.Execute()
}
