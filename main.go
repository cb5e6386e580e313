package main

import (
	"os"

	"github.com/scan-io-git/i18nscan/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
