package projects

import (
	core "github.com/goliatone/go-projects/components/projects"
)

// Service exposes the underlying components/projects.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// Controller re-export for applications that render pages directly.
type Controller = core.Controller

// NewController proxies to the internal constructor.
func NewController(service *Service, renderer core.Renderer) *Controller {
	return core.NewController(service, renderer)
}
