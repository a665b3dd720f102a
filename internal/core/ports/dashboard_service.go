package ports

import (
	"context"

	"github.com/repairworks/backoffice/internal/core/domain"
)

// DashboardData is the full payload the dashboard page works from.
// Orders are visibility-scoped; Users contains non-admin accounts only.
type DashboardData struct {
	User        domain.Principal    `json:"user"`
	Clients     []domain.Client     `json:"clients"`
	Contractors []domain.Contractor `json:"contractors"`
	Materials   []domain.Material   `json:"materials"`
	Objects     []domain.WorkObject `json:"objects"`
	Users       []domain.User       `json:"users"`
	Orders      []domain.Order      `json:"orders"`
}

// DashboardService assembles the dashboard payload for a principal.
type DashboardService interface {
	Fetch(ctx context.Context, p domain.Principal) (*DashboardData, error)
}
