// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nosave/internal/adapters/config"
	_ "go.trai.ch/nosave/internal/adapters/fs"
	_ "go.trai.ch/nosave/internal/adapters/logger"
	_ "go.trai.ch/nosave/internal/adapters/manifest"
	_ "go.trai.ch/nosave/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/nosave/internal/app"
	_ "go.trai.ch/nosave/internal/engine/resolver"
)
