// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.aurforge.dev/pkgsum/internal/adapters/config"
	_ "go.aurforge.dev/pkgsum/internal/adapters/fetch"
	_ "go.aurforge.dev/pkgsum/internal/adapters/logger"
	_ "go.aurforge.dev/pkgsum/internal/adapters/prompt"
	_ "go.aurforge.dev/pkgsum/internal/adapters/resolver"
	_ "go.aurforge.dev/pkgsum/internal/adapters/srcinfo"
	// Register app nodes.
	_ "go.aurforge.dev/pkgsum/internal/app"
)
