package main

import "github.com/nate-maxwell/core-utils/cmd"

func main() {
	cmd.Execute()
}
