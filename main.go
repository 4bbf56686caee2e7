package main

import "github.com/inovacc/grab/cmd"

func main() {
	cmd.Execute()
}
