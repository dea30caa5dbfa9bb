package main

import "github.com/seatherm/teos10/cmd"

func main() {
	cmd.Execute()
}
