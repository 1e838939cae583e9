package main

import (
	"os"

	"github.com/Balerion769/Disaster-Response-Platform/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
