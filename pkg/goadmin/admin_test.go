package goadmin_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-projects/pkg/goadmin"
	projectspkg "github.com/goliatone/go-projects/pkg/projects"
)

type stubMenuBuilder struct {
	items []goadmin.MenuItem
}

func (s *stubMenuBuilder) EnsureMenuItem(_ context.Context, _ string, item goadmin.MenuItem) error {
	s.items = append(s.items, item)
	return nil
}

func TestAdminBootstrapSeedsMenu(t *testing.T) {
	builder := &stubMenuBuilder{}
	service := projectspkg.NewService(projectspkg.Options{})
	defer service.Close()

	admin, err := goadmin.New(goadmin.Config{
		EnablePortfolio: true,
		Service:         service,
		MenuBuilder:     builder,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if len(builder.items) != 2 {
		t.Fatalf("expected 2 menu items, got %d", len(builder.items))
	}
	if builder.items[0].Label != "Panel" || builder.items[1].Label != "Proyectos" {
		t.Fatalf("unexpected menu items: %+v", builder.items)
	}
	if admin.Portfolio() == nil {
		t.Fatalf("expected portfolio service")
	}
}

func TestAdminDisabledSkipsBootstrap(t *testing.T) {
	builder := &stubMenuBuilder{}
	admin, err := goadmin.New(goadmin.Config{
		EnablePortfolio: false,
		MenuBuilder:     builder,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if len(builder.items) != 0 {
		t.Fatalf("expected no menu items, got %d", len(builder.items))
	}
	if admin.Portfolio() != nil {
		t.Fatalf("expected nil portfolio when disabled")
	}
}

func TestAdminRequiresServiceWhenEnabled(t *testing.T) {
	if _, err := goadmin.New(goadmin.Config{EnablePortfolio: true}); err == nil {
		t.Fatalf("expected missing service error")
	}
}
