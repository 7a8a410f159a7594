package main

import "github.com/inovacc/repovault/cmd"

func main() {
	cmd.Execute()
}
