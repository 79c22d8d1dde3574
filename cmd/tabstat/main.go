package main

import "github.com/tabstat/tabstat/cmd/tabstat/cmd"

func main() {
	cmd.Execute()
}
