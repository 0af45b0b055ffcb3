package main

import "github.com/lrendell/fitimport/cmd"

func main() {
	cmd.Execute()
}
