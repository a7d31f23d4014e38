package main

import "github.com/jsphweid/mozzart/cmd"

func main() {
	cmd.Execute()
}
