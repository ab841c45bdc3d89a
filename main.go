package main

import "github.com/notargets/hexkernel/cmd"

func main() {
	cmd.Execute()
}
