package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/assetkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "assetkit:", err)
		os.Exit(1)
	}
}
