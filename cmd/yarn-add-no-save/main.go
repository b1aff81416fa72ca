// Package main is the entry point for the global yarn-add-no-save binary.
package main

import (
	"os"

	"go.trai.ch/nosave/cmd/internal/commands"
	"go.trai.ch/nosave/internal/core/domain"
	_ "go.trai.ch/nosave/internal/wiring"
)

func main() {
	os.Exit(commands.Main(domain.ModeGlobal))
}
