package projects

import (
	"bytes"
	"context"
	"io"
	"testing"
)

type recordingRenderer struct {
	name string
	data any
	err  error
}

func (r *recordingRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.name = name
	r.data = data
	if r.err != nil {
		return "", r.err
	}
	html := "<html>" + name + "</html>"
	for _, w := range out {
		w.Write([]byte(html))
	}
	return html, nil
}

func TestCurrentPageResolution(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()
	controller := NewController(svc, nil)
	ctx := context.Background()

	page, err := controller.CurrentPage(ctx)
	if err != nil || page != PageDashboard {
		t.Fatalf("expected dashboard start page, got %q err=%v", page, err)
	}

	svc.Shell().Navigate(ctx, ViewProjects)
	if page, _ := controller.CurrentPage(ctx); page != PageProjects {
		t.Fatalf("expected projects page, got %q", page)
	}

	svc.Shell().SelectProject(ctx, 3)
	if page, _ := controller.CurrentPage(ctx); page != PageProjectDetail {
		t.Fatalf("expected detail page, got %q", page)
	}
}

func TestCurrentPageFallsBackOnUnknownSelection(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()
	controller := NewController(svc, nil)
	ctx := context.Background()

	svc.Shell().Navigate(ctx, ViewProjects)
	svc.Shell().SelectProject(ctx, 9999)

	page, err := controller.CurrentPage(ctx)
	if err != nil {
		t.Fatalf("stale selection must not error: %v", err)
	}
	if page != PageProjects {
		t.Fatalf("expected silent fallback to the list, got %q", page)
	}
}

func TestRenderProjectsPage(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()
	renderer := &recordingRenderer{}
	controller := NewController(svc, renderer)
	ctx := context.Background()

	svc.Shell().Navigate(ctx, ViewProjects)

	var buf bytes.Buffer
	if err := controller.Render(ctx, "es", &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if renderer.name != PageProjects {
		t.Fatalf("expected projects template, got %q", renderer.name)
	}
	if buf.String() != "<html>projects</html>" {
		t.Fatalf("unexpected output %q", buf.String())
	}

	data, ok := renderer.data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data type %T", renderer.data)
	}
	if data["locale"] != "es" {
		t.Fatalf("expected locale in page data")
	}
	cards, ok := data["cards"].([]ProjectCard)
	if !ok || len(cards) != 4 {
		t.Fatalf("expected catalog cards in page data, got %T", data["cards"])
	}
}

func TestRenderIncludesOpenModal(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()
	renderer := &recordingRenderer{}
	controller := NewController(svc, renderer)
	ctx := context.Background()

	svc.Shell().OpenModal(ctx, ModalContent{Title: "Detalles del Contrato"})

	var buf bytes.Buffer
	if err := controller.Render(ctx, "es", &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	data := renderer.data.(map[string]any)
	modal, ok := data["modal"].(*ModalContent)
	if !ok || modal == nil || modal.Title != "Detalles del Contrato" {
		t.Fatalf("expected modal in page data, got %+v", data["modal"])
	}
}

func TestRenderWithoutRenderer(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()
	controller := NewController(svc, nil)

	if err := controller.Render(context.Background(), "es", io.Discard); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestControllerAPIPayloads(t *testing.T) {
	svc := NewService(Options{})
	defer svc.Close()
	controller := NewController(svc, nil)
	ctx := context.Background()

	payload, err := controller.DashboardPayload(ctx, "es")
	if err != nil || len(payload.KPIs) != 4 {
		t.Fatalf("dashboard payload: %+v err=%v", payload, err)
	}
	cards, err := controller.ProjectCards(ctx, "es")
	if err != nil || len(cards) != 4 {
		t.Fatalf("project cards: %v err=%v", len(cards), err)
	}
	detail, err := controller.ProjectDetail(ctx, 2, "en")
	if err != nil || detail.Card.StatusLabel != "Completed" {
		t.Fatalf("project detail: %+v err=%v", detail.Card, err)
	}
}
