package projects

import (
	"strings"
	"testing"
)

func validProject() Project {
	return Project{
		ID:        1,
		Name:      "Edificio Central",
		Budget:    150000,
		Spent:     130000,
		Status:    StatusInProgress,
		StartDate: "2025-01-15",
		Timeline: []TimelineEvent{
			{Date: "2025-01-15", Label: "Inicio de obra", Status: TimelineCompleted},
			{Date: "2025-06-01", Label: "Entrega", Status: TimelinePending},
		},
		Payments: []Payment{
			{ID: 1, Description: "Anticipo", Amount: 50000, Date: "2025-01-20", Status: PaymentPaid},
		},
	}
}

func TestProjectValidate(t *testing.T) {
	if err := validProject().Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Project)
		wantErr string
	}{
		{
			name:    "missing id",
			mutate:  func(p *Project) { p.ID = 0 },
			wantErr: "cannot be blank",
		},
		{
			name:    "missing name",
			mutate:  func(p *Project) { p.Name = "" },
			wantErr: "name:",
		},
		{
			name:    "negative budget",
			mutate:  func(p *Project) { p.Budget = -1 },
			wantErr: "budget:",
		},
		{
			name:    "bad start date",
			mutate:  func(p *Project) { p.StartDate = "15/01/2025" },
			wantErr: "start_date:",
		},
		{
			name:    "unknown status",
			mutate:  func(p *Project) { p.Status = "archived" },
			wantErr: "unknown status",
		},
		{
			name:    "bad timeline status",
			mutate:  func(p *Project) { p.Timeline[0].Status = "done" },
			wantErr: "timeline",
		},
		{
			name:    "bad payment date",
			mutate:  func(p *Project) { p.Payments[0].Date = "pronto" },
			wantErr: "payments",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			project := validProject()
			tc.mutate(&project)
			err := project.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDateDraftValidate(t *testing.T) {
	ok := DateDraft{Start: "2025-01-15", Rescheduled: "2025-03-01"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}
	if err := (DateDraft{Start: "2025-01-15"}).Validate(); err != nil {
		t.Fatalf("empty rescheduled date must be allowed: %v", err)
	}
	if err := (DateDraft{}).Validate(); err == nil {
		t.Fatalf("missing start date must be rejected")
	}
	if err := (DateDraft{Start: "enero"}).Validate(); err == nil {
		t.Fatalf("non-ISO start date must be rejected")
	}
}

func TestJSONSchemaValidator(t *testing.T) {
	def := CardDefinition{
		Code: "monthly_sales",
		Name: "Ventas Mensuales",
		Kind: CardBarChart,
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"months"},
			"properties": map[string]any{
				"months": map[string]any{"type": "integer", "minimum": 1},
			},
		},
	}
	v := NewJSONSchemaValidator()

	if err := v.Validate(def, map[string]any{"months": 6}); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if err := v.Validate(def, map[string]any{"months": 0}); err == nil {
		t.Fatalf("expected minimum violation")
	}
	if err := v.Validate(def, nil); err == nil {
		t.Fatalf("expected missing required property")
	}
}

func TestJSONSchemaValidatorWithoutSchema(t *testing.T) {
	v := NewJSONSchemaValidator()
	def := CardDefinition{Code: "free_form", Name: "Libre", Kind: CardKPI}
	if err := v.Validate(def, map[string]any{"anything": true}); err != nil {
		t.Fatalf("schemaless cards accept any config: %v", err)
	}
}
