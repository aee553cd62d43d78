package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"

	projects "github.com/goliatone/go-projects/components/projects"
	"github.com/goliatone/go-projects/pkg/export"
	"github.com/goliatone/go-projects/pkg/storage"
)

type cli struct {
	List     listCmd     `cmd:"" help:"List the project catalog."`
	Export   exportCmd   `cmd:"" help:"Render a project summary PDF."`
	Validate validateCmd `cmd:"" help:"Validate a dashboard card manifest."`
}

type listCmd struct {
	Locale string `default:"es" help:"Locale for status labels."`
	JSON   bool   `help:"Emit the catalog as JSON instead of a table."`
}

type exportCmd struct {
	ID     int    `arg:"" help:"Project id to export."`
	Locale string `default:"es" help:"Locale for labels inside the document."`
	Out    string `type:"path" help:"Output path (defaults to <project-name>-resumen.pdf in the working directory)."`
}

type validateCmd struct {
	Path string `arg:"" type:"path" help:"Manifest YAML file to validate."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Portfolio catalog utility: inspect projects, export summaries, validate manifests."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func newService() *projects.Service {
	return projects.NewService(projects.Options{
		Attachments: storage.NewContractVault(storage.NewMemoryStore()),
		Exporter:    export.NewPDFExporter(),
	})
}

func (cmd *listCmd) Run(ctx context.Context) error {
	service := newService()
	defer service.Close()

	catalog, err := service.Projects(ctx)
	if err != nil {
		return err
	}
	if cmd.JSON {
		cards := projects.ProjectCards(catalog, cmd.Locale)
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cards)
	}
	fmt.Fprintf(os.Stdout, "%-4s %-32s %-14s %10s %12s %12s\n",
		"ID", "NOMBRE", "STATUS", "AVANCE", "GASTADO", "PRESUPUESTO")
	for _, project := range catalog {
		fmt.Fprintf(os.Stdout, "%-4d %-32s %-14s %9.1f%% %12s %12s\n",
			project.ID,
			project.Name,
			project.Status.Label(cmd.Locale),
			project.Progress(),
			projects.FormatMoney(project.Spent),
			projects.FormatMoney(project.Budget),
		)
	}
	return nil
}

func (cmd *exportCmd) Run(ctx context.Context) error {
	service := newService()
	defer service.Close()

	project, ok, err := service.Project(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("deskctl: project %d not found", cmd.ID)
	}

	data, _, err := service.ExportSummary(ctx, cmd.ID, cmd.Locale)
	if err != nil {
		return err
	}

	out := cmd.Out
	if out == "" {
		out = fmt.Sprintf("%s-resumen.pdf", strcase.ToKebab(project.Name))
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("deskctl: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("deskctl: write %s: %w", out, err)
	}
	fmt.Fprintf(os.Stdout, "✓ Exported %s (%d bytes) to %s\n", project.Name, len(data), out)
	return nil
}

func (cmd *validateCmd) Run(_ context.Context) error {
	doc, err := projects.ReadManifest(cmd.Path)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	validator := projects.NewJSONSchemaValidator()
	for _, card := range doc.Cards {
		if err := validator.Validate(card.Definition, card.Config); err != nil {
			return fmt.Errorf("deskctl: card %s: %w", card.Definition.Code, err)
		}
	}
	fmt.Fprintf(os.Stdout, "✓ %s is valid (%d cards)\n", cmd.Path, len(doc.Cards))
	return nil
}
