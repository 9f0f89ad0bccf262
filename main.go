package main

import "example.com/travelagency/cmd"

func main() {
	cmd.Execute()
}
