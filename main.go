package main

import (
	"os"

	"github.com/sixfootdad/coldvault/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
