// Package main is the entry point for the project-local add-no-save binary,
// launched through `yarn add-no-save`.
package main

import (
	"os"

	"go.trai.ch/nosave/cmd/internal/commands"
	"go.trai.ch/nosave/internal/core/domain"
	_ "go.trai.ch/nosave/internal/wiring"
)

func main() {
	os.Exit(commands.Main(domain.ModeLocal))
}
