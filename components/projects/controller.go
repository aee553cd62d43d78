package projects

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Controller resolves the shell's current page into template output or JSON
// payloads for transports.
type Controller struct {
	service  *Service
	renderer Renderer
}

// NewController wires the service and an optional template renderer.
func NewController(service *Service, renderer Renderer) *Controller {
	return &Controller{service: service, renderer: renderer}
}

// Page names rendered by the controller.
const (
	PageDashboard     = "dashboard"
	PageProjects      = "projects"
	PageProjectDetail = "project_detail"
)

// CurrentPage resolves which page the shell state lands on. A selected id
// that no longer resolves to a catalog record silently falls back to the
// project list; there is no "not found" page.
func (c *Controller) CurrentPage(ctx context.Context) (string, error) {
	shell := c.service.Shell()
	if shell.ActiveView() == ViewDashboard {
		return PageDashboard, nil
	}
	id := shell.SelectedProjectID()
	if id == 0 {
		return PageProjects, nil
	}
	_, ok, err := c.service.Project(ctx, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return PageProjects, nil
	}
	return PageProjectDetail, nil
}

// Render writes the current page's HTML to out.
func (c *Controller) Render(ctx context.Context, locale string, out io.Writer) error {
	if c.renderer == nil {
		return errors.New("projects: controller has no template renderer")
	}
	page, err := c.CurrentPage(ctx)
	if err != nil {
		return err
	}
	data, err := c.pageData(ctx, page, locale)
	if err != nil {
		return err
	}
	if _, err := c.renderer.Render(page, data, out); err != nil {
		return fmt.Errorf("projects: render %s: %w", page, err)
	}
	return nil
}

func (c *Controller) pageData(ctx context.Context, page, locale string) (map[string]any, error) {
	data := map[string]any{
		"modal":  c.service.Shell().Modal(),
		"locale": locale,
	}
	switch page {
	case PageDashboard:
		payload, err := c.service.Dashboard(ctx, locale)
		if err != nil {
			return nil, err
		}
		data["payload"] = payload
	case PageProjects:
		catalog, err := c.service.Projects(ctx)
		if err != nil {
			return nil, err
		}
		data["cards"] = ProjectCards(catalog, locale)
	case PageProjectDetail:
		detail, err := c.service.Detail(ctx, c.service.Shell().SelectedProjectID(), locale)
		if err != nil {
			return nil, err
		}
		data["detail"] = detail
	default:
		return nil, fmt.Errorf("projects: unknown page %q", page)
	}
	return data, nil
}

// DashboardPayload resolves the dashboard JSON payload for API transports.
func (c *Controller) DashboardPayload(ctx context.Context, locale string) (DashboardPayload, error) {
	return c.service.Dashboard(ctx, locale)
}

// ProjectCards resolves the list payload for API transports.
func (c *Controller) ProjectCards(ctx context.Context, locale string) ([]ProjectCard, error) {
	catalog, err := c.service.Projects(ctx)
	if err != nil {
		return nil, err
	}
	return ProjectCards(catalog, locale), nil
}

// ProjectDetail resolves the detail payload for API transports.
func (c *Controller) ProjectDetail(ctx context.Context, id int, locale string) (ProjectDetail, error) {
	return c.service.Detail(ctx, id, locale)
}
