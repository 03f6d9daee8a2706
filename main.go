package main

import "github.com/rag-nar1/abloom/cmd"

func main() {
	cmd.Execute()
}
