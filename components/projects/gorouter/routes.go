package gorouter

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	router "github.com/goliatone/go-router"

	projects "github.com/goliatone/go-projects/components/projects"
	"github.com/goliatone/go-projects/components/projects/commands"
	"github.com/goliatone/go-projects/components/projects/httpapi"
	"github.com/goliatone/go-projects/components/projects/queries"
)

// LocaleResolver extracts the display locale from a request context.
type LocaleResolver func(router.Context) string

// Config wires go-router with the project controllers, APIs, and hooks.
type Config[T any] struct {
	Router         router.Router[T]
	Controller     *projects.Controller
	API            httpapi.Executor
	Broadcast      *projects.BroadcastHook
	LocaleResolver LocaleResolver
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for project endpoints.
type RouteConfig struct {
	HTML      string
	Dashboard string
	Projects  string
	ProjectID string
	Navigate  string
	Actions   string
	Contract  string
	Dates     string
	Summary   string
	WebSocket string
}

// UploadPayload is the JSON body of the contract attach route. Content is
// base64 so the document survives JSON transport intact.
type UploadPayload struct {
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
	Content   string `json:"content"`
}

// Register mounts project routes (HTML, JSON, REST, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := cfg.routes()
	base := cfg.BasePath
	if base == "" {
		base = "/app"
	}
	localeResolver := cfg.LocaleResolver
	if localeResolver == nil {
		localeResolver = defaultLocaleResolver
	}

	group := cfg.Router.Group(base)

	group.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := cfg.Controller.Render(ctx.Context(), localeResolver(ctx), &buf); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	if cfg.API != nil {
		registerAPI(group, cfg.API, localeResolver, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, resolver LocaleResolver, routes RouteConfig) {
	r.Get(routes.Dashboard, router.WrapHandler(func(ctx router.Context) error {
		payload, err := api.Dashboard(ctx.Context(), queries.DashboardRequest{Locale: resolver(ctx)})
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, payload)
	}))

	r.Get(routes.Projects, router.WrapHandler(func(ctx router.Context) error {
		cards, err := api.ProjectList(ctx.Context(), queries.ProjectListRequest{Locale: resolver(ctx)})
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, cards)
	}))

	r.Get(routes.ProjectID, router.WrapHandler(func(ctx router.Context) error {
		id, err := projectID(ctx)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		detail, err := api.ProjectDetail(ctx.Context(), queries.ProjectDetailRequest{
			ProjectID: id,
			Locale:    resolver(ctx),
		})
		if err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		return ctx.JSON(http.StatusOK, detail)
	}))

	r.Post(routes.Navigate, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.NavigateInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Navigate(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}))

	r.Post(routes.Actions, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.TriggerActionInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.TriggerAction(ctx.Context(), payload); err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		return ctx.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
	}))

	r.Post(routes.Contract, router.WrapHandler(func(ctx router.Context) error {
		id, err := projectID(ctx)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		var payload UploadPayload
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		content, err := base64.StdEncoding.DecodeString(payload.Content)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		var result projects.ContractAttachment
		input := commands.AttachContractInput{
			ProjectID: id,
			Upload: projects.FileUpload{
				Name:      payload.Filename,
				MediaType: payload.MediaType,
				Size:      int64(len(content)),
				Content:   content,
			},
			Result: &result,
		}
		if err := api.AttachContract(ctx.Context(), input); err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		return ctx.JSON(http.StatusCreated, result)
	}))

	r.Delete(routes.Contract, router.WrapHandler(func(ctx router.Context) error {
		id, err := projectID(ctx)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.RemoveContract(ctx.Context(), commands.RemoveContractInput{ProjectID: id}); err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		// 204 must not carry a body.
		return ctx.NoContent(http.StatusNoContent)
	}))

	r.Put(routes.Dates, router.WrapHandler(func(ctx router.Context) error {
		id, err := projectID(ctx)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		var draft projects.DateDraft
		if err := json.Unmarshal(ctx.Body(), &draft); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.UpdateDates(ctx.Context(), commands.UpdateDatesInput{ProjectID: id, Draft: draft}); err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Get(routes.Summary, router.WrapHandler(func(ctx router.Context) error {
		id, err := projectID(ctx)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		export, err := api.ExportSummary(ctx.Context(), queries.SummaryExportRequest{
			ProjectID: id,
			Locale:    resolver(ctx),
		})
		if err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		ctx.SetHeader("Content-Type", "application/pdf")
		ctx.SetHeader("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
		return ctx.Send(export.Data)
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *projects.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func projectID(ctx router.Context) (int, error) {
	raw := ctx.Param("id")
	if raw == "" {
		return 0, errors.New("project id is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("project id must be a positive integer")
	}
	return id, nil
}

func defaultLocaleResolver(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	if header := ctx.Header("Accept-Language"); header != "" {
		if lang := parseAcceptLanguage(header); lang != "" {
			return lang
		}
	}
	return projects.DefaultLocale
}

func parseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, projects.ErrProjectNotFound), errors.Is(err, projects.ErrNoContract):
		return http.StatusNotFound
	case errors.Is(err, projects.ErrNotPDF), errors.Is(err, projects.ErrEmptyUpload):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func (cfg Config[T]) routes() RouteConfig {
	return defaultRouteConfig(cfg.Routes)
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/"
	}
	if routes.Dashboard == "" {
		routes.Dashboard = "/api/dashboard"
	}
	if routes.Projects == "" {
		routes.Projects = "/api/projects"
	}
	if routes.ProjectID == "" {
		routes.ProjectID = "/api/projects/:id"
	}
	if routes.Navigate == "" {
		routes.Navigate = "/api/navigate"
	}
	if routes.Actions == "" {
		routes.Actions = "/api/actions"
	}
	if routes.Contract == "" {
		routes.Contract = "/api/projects/:id/contract"
	}
	if routes.Dates == "" {
		routes.Dates = "/api/projects/:id/dates"
	}
	if routes.Summary == "" {
		routes.Summary = "/api/projects/:id/summary.pdf"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/api/events"
	}
	return routes
}
