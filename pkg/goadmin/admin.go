package goadmin

import (
	"context"
	"errors"

	activitypkg "github.com/goliatone/go-projects/pkg/activity"
	projectspkg "github.com/goliatone/go-projects/pkg/projects"
)

// MenuBuilder ensures portfolio entries exist within the admin navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures portfolio link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Position int
}

// Config wires the portfolio service + feature flags into an admin shell.
type Config struct {
	EnablePortfolio bool
	MenuCode        string
	MenuBuilder     MenuBuilder
	Service         *projectspkg.Service
	MenuItems       []MenuItem
	ActivityHooks   activitypkg.Hooks
	ActivityConfig  activitypkg.Config
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// New creates an Admin helper that can seed portfolio menus.
func New(cfg Config) (*Admin, error) {
	if cfg.EnablePortfolio && cfg.Service == nil {
		return nil, errors.New("goadmin: portfolio service is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if len(cfg.MenuItems) == 0 {
		cfg.MenuItems = []MenuItem{
			{Label: "Panel", Route: "admin.portfolio.dashboard", Icon: "home", Position: 0},
			{Label: "Proyectos", Route: "admin.portfolio.projects", Icon: "folder", Position: 1},
		}
	}
	return &Admin{cfg: cfg}, nil
}

// Portfolio exposes the configured portfolio service when enabled.
func (a *Admin) Portfolio() *projectspkg.Service {
	if !a.cfg.EnablePortfolio {
		return nil
	}
	return a.cfg.Service
}

// Bootstrap seeds menu entries when portfolio support is enabled.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnablePortfolio || a.cfg.MenuBuilder == nil {
		return nil
	}
	for _, item := range a.cfg.MenuItems {
		if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, item); err != nil {
			return err
		}
	}
	return nil
}
