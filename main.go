package main

import "github.com/inovacc/frontdesk/cmd"

func main() {
	cmd.Execute()
}
