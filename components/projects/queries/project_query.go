package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	projects "github.com/goliatone/go-projects/components/projects"
)

type catalogService interface {
	Projects(ctx context.Context) ([]projects.Project, error)
	Detail(ctx context.Context, id int, locale string) (projects.ProjectDetail, error)
}

// ProjectListRequest selects the locale for card labels.
type ProjectListRequest struct {
	Locale string `json:"locale"`
}

// ProjectListQuery resolves the catalog as render-ready cards.
type ProjectListQuery struct {
	service catalogService
}

// NewProjectListQuery builds the query.
func NewProjectListQuery(service catalogService) *ProjectListQuery {
	return &ProjectListQuery{service: service}
}

var _ gocommand.Querier[ProjectListRequest, []projects.ProjectCard] = (*ProjectListQuery)(nil)

// Query lists every project as a card view model.
func (q *ProjectListQuery) Query(ctx context.Context, req ProjectListRequest) ([]projects.ProjectCard, error) {
	catalog, err := q.service.Projects(ctx)
	if err != nil {
		return nil, err
	}
	return projects.ProjectCards(catalog, req.Locale), nil
}

// ProjectDetailRequest identifies the project and locale for the detail view.
type ProjectDetailRequest struct {
	ProjectID int    `json:"project_id"`
	Locale    string `json:"locale"`
}

// ProjectDetailQuery resolves the full detail payload for one project.
type ProjectDetailQuery struct {
	service catalogService
}

// NewProjectDetailQuery builds the query.
func NewProjectDetailQuery(service catalogService) *ProjectDetailQuery {
	return &ProjectDetailQuery{service: service}
}

var _ gocommand.Querier[ProjectDetailRequest, projects.ProjectDetail] = (*ProjectDetailQuery)(nil)

// Query resolves the detail payload, including budget, timeline, contract and
// action state.
func (q *ProjectDetailQuery) Query(ctx context.Context, req ProjectDetailRequest) (projects.ProjectDetail, error) {
	return q.service.Detail(ctx, req.ProjectID, req.Locale)
}
