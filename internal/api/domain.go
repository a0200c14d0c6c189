package api

import (
	"github.com/JaimeStill/phpstan-ui/internal/navigation"
	"github.com/JaimeStill/phpstan-ui/internal/styles"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Navigation navigation.System
	Styles     styles.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Navigation: navigation.New(runtime.Table, runtime.Logger),
		Styles: styles.New(
			runtime.Source,
			runtime.Content,
			runtime.DarkMode,
			runtime.Logger,
		),
	}
}
