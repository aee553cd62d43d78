package projects

import "context"

var defaultCardDefinitions = []CardDefinition{
	{
		Code: "dashboard.card.monthly_sales",
		Name: "Monthly Sales",
		NameLocalized: map[string]string{
			"es": "Ventas Mensuales",
		},
		Description: "Month-over-month sales performance for the last semester.",
		DescriptionLocalized: map[string]string{
			"es": "Este gráfico de barras muestra el rendimiento de las ventas mes a mes durante el último semestre. Permite identificar tendencias y picos de ventas.",
		},
		Kind: CardBarChart,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"theme": map[string]any{"type": "string"},
			},
		},
	},
	{
		Code: "dashboard.card.traffic_sources",
		Name: "Traffic Distribution",
		NameLocalized: map[string]string{
			"es": "Distribución de Tráfico",
		},
		Description: "Share of visitors per traffic source.",
		DescriptionLocalized: map[string]string{
			"es": "Este gráfico de pastel ilustra la proporción de visitantes según la fuente de tráfico. Es útil para entender qué canales están generando más visitas.",
		},
		Kind: CardPieChart,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"theme": map[string]any{"type": "string"},
			},
		},
	},
}

// DefaultCardDefinitions returns the built-in chart card definitions.
func DefaultCardDefinitions() []CardDefinition {
	out := make([]CardDefinition, len(defaultCardDefinitions))
	copy(out, defaultCardDefinitions)
	return out
}

var defaultKPIs = []KPIEntry{
	{Title: "Usuarios Totales", Value: "12,480", Icon: "users", Change: "+12.5%", Direction: KPIIncrease},
	{Title: "Ingresos", Value: "$89,345", Icon: "revenue", Change: "+8.2%", Direction: KPIIncrease},
	{Title: "Nuevos Pedidos", Value: "2,150", Icon: "orders", Change: "-1.8%", Direction: KPIDecrease},
	{Title: "Crecimiento", Value: "+15.3%", Icon: "growth", Change: "+3.1%", Direction: KPIIncrease},
}

var defaultMonthlySales = []ChartPoint{
	{Label: "Ene", Value: 4200},
	{Label: "Feb", Value: 3100},
	{Label: "Mar", Value: 5000},
	{Label: "Abr", Value: 4500},
	{Label: "May", Value: 6200},
	{Label: "Jun", Value: 5800},
}

var defaultTrafficSources = []ChartPoint{
	{Label: "Orgánico", Value: 450},
	{Label: "Directo", Value: 320},
	{Label: "Referido", Value: 250},
	{Label: "Social", Value: 180},
}

var defaultProjects = []Project{
	{
		ID:          1,
		Name:        "Lanzamiento App Móvil 'Nexus'",
		Description: "Desarrollo y lanzamiento de la nueva aplicación móvil para iOS y Android, enfocada en la interacción social.",
		Budget:      150000,
		Spent:       130000,
		Status:      StatusInProgress,
		StartDate:   "2024-01-15",
		Team: []TeamMember{
			{Name: "Ana Torres", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704d"},
			{Name: "Carlos Vega", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704e"},
			{Name: "Sofia Reyes", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704f"},
		},
		Timeline: []TimelineEvent{
			{Date: "2024-02-01", Label: "Inicio del Desarrollo", Status: TimelineCompleted},
			{Date: "2024-04-15", Label: "Fase de Pruebas Alpha", Status: TimelineCompleted},
			{Date: "2024-06-20", Label: "Lanzamiento Beta", Status: TimelineInProgress},
			{Date: "2024-08-01", Label: "Lanzamiento Público", Status: TimelinePending},
		},
		Payments: []Payment{
			{ID: 1, Description: "Pago inicial", Amount: 50000, Date: "2024-01-20", Status: PaymentPaid},
			{ID: 2, Description: "Hito 1: Prototipo", Amount: 40000, Date: "2024-03-10", Status: PaymentPaid},
			{ID: 3, Description: "Hito 2: Beta", Amount: 40000, Date: "2024-06-25", Status: PaymentPending},
		},
		Contract: "Este Contrato de Servicios de Desarrollo de Software ('Contrato') se celebra el 15 de enero de 2024, entre 'Cliente Corp.' y 'Desarrollador LTD'. Objeto: Desarrollador LTD se compromete a diseñar, desarrollar y entregar la aplicación móvil 'Nexus' según las especificaciones acordadas. Pagos: El pago total será de $150,000, distribuido en hitos. Confidencialidad: Ambas partes acuerdan mantener la confidencialidad de la información compartida.",
	},
	{
		ID:              2,
		Name:            "Migración a Infraestructura Cloud",
		Description:     "Mover toda la infraestructura de servidores locales a una solución basada en la nube para mejorar la escalabilidad.",
		Budget:          220000,
		Spent:           215000,
		Status:          StatusCompleted,
		StartDate:       "2023-10-01",
		RescheduledDate: "2023-10-05",
		Team: []TeamMember{
			{Name: "Luis Fernandez", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026705a"},
			{Name: "Marta Peña", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026705b"},
		},
		Timeline: []TimelineEvent{
			{Date: "2023-10-05", Label: "Planificación Aprobada", Status: TimelineCompleted},
			{Date: "2023-11-20", Label: "Infraestructura Creada", Status: TimelineCompleted},
			{Date: "2024-01-15", Label: "Migración de Datos", Status: TimelineCompleted},
			{Date: "2024-02-01", Label: "Proyecto Finalizado", Status: TimelineCompleted},
		},
		Payments: []Payment{
			{ID: 1, Description: "Pago inicial", Amount: 100000, Date: "2023-10-10", Status: PaymentPaid},
			{ID: 2, Description: "Pago final", Amount: 120000, Date: "2024-02-05", Status: PaymentPaid},
		},
		Contract: "Contrato de Servicios de Migración Cloud. Fecha: 01 de Octubre de 2023. Partes: 'Cliente Corp.' y 'Cloud Services Inc.'. Alcance: Migración completa de la infraestructura on-premise a la plataforma AWS. Presupuesto: $220,000. Plazo de entrega: 4 meses.",
	},
	{
		ID:          3,
		Name:        "Rediseño del Sitio Web Corporativo",
		Description: "Actualización completa del diseño y la experiencia de usuario del sitio web principal de la empresa.",
		Budget:      85000,
		Spent:       35000,
		Status:      StatusInProgress,
		StartDate:   "2024-03-01",
		Team: []TeamMember{
			{Name: "Elena Ríos", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026705c"},
			{Name: "Pedro Gomez", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026705d"},
			{Name: "Julia Sanz", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026705e"},
			{Name: "David Marín", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026705f"},
		},
		Timeline: []TimelineEvent{
			{Date: "2024-03-10", Label: "Investigación y UX", Status: TimelineCompleted},
			{Date: "2024-04-22", Label: "Diseño UI Aprobado", Status: TimelineCompleted},
			{Date: "2024-07-01", Label: "Desarrollo Frontend", Status: TimelineInProgress},
			{Date: "2024-09-01", Label: "Lanzamiento", Status: TimelinePending},
		},
		Payments: []Payment{
			{ID: 1, Description: "Fase 1: Diseño", Amount: 30000, Date: "2024-03-15", Status: PaymentPaid},
			{ID: 2, Description: "Fase 2: Desarrollo", Amount: 55000, Date: "2024-07-05", Status: PaymentPending},
		},
		Contract: "Contrato de Rediseño Web. Fecha: 01 de Marzo de 2024. Partes: 'Cliente Corp.' y 'Diseño Web Pro'. Objeto: Rediseño del sitio web corporativo. Costo: $85,000. Entrega final: 01 de Septiembre de 2024.",
	},
	{
		ID:          4,
		Name:        "Campaña de Marketing Q4",
		Description: "Planificación y ejecución de la campaña de marketing digital para el último trimestre del año.",
		Budget:      120000,
		Spent:       105000,
		Status:      StatusPaused,
		StartDate:   "2024-09-01",
		Team: []TeamMember{
			{Name: "Laura Méndez", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026706a"},
			{Name: "Ricardo Soto", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026706b"},
		},
		Timeline: []TimelineEvent{
			{Date: "2024-09-05", Label: "Estrategia Definida", Status: TimelineCompleted},
			{Date: "2024-09-20", Label: "Creatividades Aprobadas", Status: TimelineCompleted},
			{Date: "2024-10-01", Label: "Lanzamiento de Campaña", Status: TimelinePending},
		},
		Payments: []Payment{
			{ID: 1, Description: "Setup y Creatividades", Amount: 50000, Date: "2024-09-10", Status: PaymentPaid},
			{ID: 2, Description: "Inversión en Medios", Amount: 70000, Date: "2024-10-05", Status: PaymentPending},
		},
		Contract: "Contrato de Servicios de Marketing. Fecha: 01 de Septiembre de 2024. Partes: 'Cliente Corp.' y 'Marketing Digital Global'. Objeto: Campaña de marketing para el Q4. Presupuesto: $120,000.",
	},
}

// StaticProjectRepository serves a fixed, ordered project catalog.
type StaticProjectRepository struct {
	projects []Project
}

// NewStaticProjectRepository validates and stores the given catalog.
func NewStaticProjectRepository(catalog []Project) (*StaticProjectRepository, error) {
	for _, project := range catalog {
		if err := project.Validate(); err != nil {
			return nil, err
		}
	}
	out := make([]Project, len(catalog))
	copy(out, catalog)
	return &StaticProjectRepository{projects: out}, nil
}

// DefaultProjectRepository returns the built-in seed catalog.
func DefaultProjectRepository() *StaticProjectRepository {
	repo, err := NewStaticProjectRepository(defaultProjects)
	if err != nil {
		// Seed data is compile-time constant; a validation failure here is a
		// programming error.
		panic(err)
	}
	return repo
}

// Projects returns the catalog in seed order.
func (r *StaticProjectRepository) Projects(_ context.Context) ([]Project, error) {
	out := make([]Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

// Project resolves a single record by id.
func (r *StaticProjectRepository) Project(_ context.Context, id int) (Project, bool, error) {
	for _, project := range r.projects {
		if project.ID == id {
			return project, true, nil
		}
	}
	return Project{}, false, nil
}

// StaticSeriesRepository serves the fixed dashboard chart series.
type StaticSeriesRepository struct {
	Sales   []ChartPoint
	Traffic []ChartPoint
}

// DefaultSeriesRepository returns the built-in chart series.
func DefaultSeriesRepository() *StaticSeriesRepository {
	return &StaticSeriesRepository{
		Sales:   append([]ChartPoint(nil), defaultMonthlySales...),
		Traffic: append([]ChartPoint(nil), defaultTrafficSources...),
	}
}

// MonthlySales returns the bar chart series in order.
func (r *StaticSeriesRepository) MonthlySales(_ context.Context) ([]ChartPoint, error) {
	return append([]ChartPoint(nil), r.Sales...), nil
}

// TrafficSources returns the pie chart series in order.
func (r *StaticSeriesRepository) TrafficSources(_ context.Context) ([]ChartPoint, error) {
	return append([]ChartPoint(nil), r.Traffic...), nil
}

// StaticKPIFeed serves fixed KPI entries.
type StaticKPIFeed struct {
	Entries []KPIEntry
}

// DefaultKPIFeed returns the built-in KPI tiles.
func DefaultKPIFeed() *StaticKPIFeed {
	return &StaticKPIFeed{Entries: append([]KPIEntry(nil), defaultKPIs...)}
}

// KPIs returns the tiles in order.
func (f *StaticKPIFeed) KPIs(_ context.Context) ([]KPIEntry, error) {
	return append([]KPIEntry(nil), f.Entries...), nil
}

func init() {
	RegisterCardHook(func(reg *Registry) error {
		series := DefaultSeriesRepository()
		providers := map[string]CardProvider{
			"dashboard.card.monthly_sales":   NewBarCardProvider(series, nil),
			"dashboard.card.traffic_sources": NewPieCardProvider(series, nil),
		}
		for code, provider := range providers {
			if _, ok := reg.Provider(code); ok {
				continue
			}
			if _, ok := reg.Definition(code); !ok {
				continue
			}
			if err := reg.RegisterProvider(code, provider); err != nil {
				return err
			}
		}
		return nil
	})
}
