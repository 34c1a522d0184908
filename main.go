package main

import (
	"os"

	"github.com/mrbear1024/xgrowth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
