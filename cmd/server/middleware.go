package main

import (
	"github.com/JaimeStill/phpstan-ui/internal/infrastructure"
	"github.com/JaimeStill/phpstan-ui/pkg/middleware"
)

// buildMiddleware creates the outer middleware stack shared by every module.
func buildMiddleware(infra *infrastructure.Infrastructure) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(infra.Logger))
	middlewareSys.Use(middleware.TrimSlash())
	return middlewareSys
}
