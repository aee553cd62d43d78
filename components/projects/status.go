package projects

import (
	"fmt"
	"strings"
)

// ProjectStatus is the closed set of project lifecycle states.
type ProjectStatus string

// Project statuses.
const (
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusPaused     ProjectStatus = "paused"
)

// TimelineStatus is the closed set of timeline milestone states.
type TimelineStatus string

// Timeline milestone statuses.
const (
	TimelineCompleted  TimelineStatus = "completed"
	TimelinePending    TimelineStatus = "pending"
	TimelineInProgress TimelineStatus = "in_progress"
)

// PaymentStatus is the closed set of payment settlement states.
type PaymentStatus string

// Payment statuses.
const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// BadgeStyle is the style token a status badge resolves to.
type BadgeStyle string

// Badge style tokens.
const (
	BadgeGreen  BadgeStyle = "green"
	BadgeYellow BadgeStyle = "yellow"
	BadgeBlue   BadgeStyle = "blue"
)

var projectStatusLabels = map[ProjectStatus]map[string]string{
	StatusInProgress: {"es": "En Progreso", "en": "In Progress"},
	StatusCompleted:  {"es": "Completado", "en": "Completed"},
	StatusPaused:     {"es": "En Pausa", "en": "Paused"},
}

var timelineStatusLabels = map[TimelineStatus]map[string]string{
	TimelineCompleted:  {"es": "Completado", "en": "Completed"},
	TimelinePending:    {"es": "Pendiente", "en": "Pending"},
	TimelineInProgress: {"es": "En Progreso", "en": "In Progress"},
}

var paymentStatusLabels = map[PaymentStatus]map[string]string{
	PaymentPaid:    {"es": "Pagado", "en": "Paid"},
	PaymentPending: {"es": "Pendiente", "en": "Pending"},
}

// Valid reports whether the status is one of the known variants.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

// Badge maps the status to its style token. The mapping is exhaustive over
// the closed enum; unknown values resolve to the in-progress style, matching
// the catalog's default badge.
func (s ProjectStatus) Badge() BadgeStyle {
	switch s {
	case StatusCompleted:
		return BadgeGreen
	case StatusPaused:
		return BadgeYellow
	case StatusInProgress:
		return BadgeBlue
	default:
		return BadgeBlue
	}
}

// Label returns the localized display label with fallback to Spanish, the
// catalog's source locale.
func (s ProjectStatus) Label(locale string) string {
	return ResolveLocalizedValue(projectStatusLabels[s], locale, string(s))
}

// Label returns the localized milestone label.
func (s TimelineStatus) Label(locale string) string {
	return ResolveLocalizedValue(timelineStatusLabels[s], locale, string(s))
}

// Completed reports whether the milestone renders with completed styling.
func (s TimelineStatus) Completed() bool {
	return s == TimelineCompleted
}

// Label returns the localized payment status label.
func (s PaymentStatus) Label(locale string) string {
	return ResolveLocalizedValue(paymentStatusLabels[s], locale, string(s))
}

// ParseProjectStatus accepts canonical codes plus the localized labels used
// by seed catalogs.
func ParseProjectStatus(value string) (ProjectStatus, error) {
	switch normalizeStatusToken(value) {
	case "in_progress", "en progreso":
		return StatusInProgress, nil
	case "completed", "completado":
		return StatusCompleted, nil
	case "paused", "en pausa":
		return StatusPaused, nil
	}
	return "", fmt.Errorf("projects: unknown project status %q", value)
}

// ParseTimelineStatus accepts canonical codes plus localized labels.
func ParseTimelineStatus(value string) (TimelineStatus, error) {
	switch normalizeStatusToken(value) {
	case "completed", "completado":
		return TimelineCompleted, nil
	case "pending", "pendiente":
		return TimelinePending, nil
	case "in_progress", "en progreso":
		return TimelineInProgress, nil
	}
	return "", fmt.Errorf("projects: unknown timeline status %q", value)
}

// ParsePaymentStatus accepts canonical codes plus localized labels.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	switch normalizeStatusToken(value) {
	case "paid", "pagado":
		return PaymentPaid, nil
	case "pending", "pendiente":
		return PaymentPending, nil
	}
	return "", fmt.Errorf("projects: unknown payment status %q", value)
}

func normalizeStatusToken(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	return strings.ReplaceAll(value, "-", "_")
}
