package main

import "github.com/metal-toolbox/hwmanager/cmd"

func main() {
	cmd.Execute()
}
