// main is the entry point for the slogate CLI.
package main

import (
	"github.com/huangsam/slogate/cmd"
	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/internal/histstore"
)

func main() {
	err := cmd.Execute()
	histstore.CloseStore()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
