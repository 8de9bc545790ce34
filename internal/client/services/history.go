package services

import (
	"context"
	"fmt"

	"github.com/sigerhq/fieldreport/internal/client/api"
	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/logging"
)

const defaultHistoryPageSize = 10

// History browses past reports with filtering, sorting and pagination.
type History struct {
	client api.Client
	log    logging.Logger
}

func NewHistory(client api.Client, log logging.Logger) *History {
	return &History{client: client, log: log}
}

// List fetches one page of historical reports. Page defaults to 1, limit to
// defaultHistoryPageSize, sort to newest-updated first.
func (h *History) List(ctx context.Context, params models.ListParams) ([]models.DailyProgressRecord, *models.Pagination, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = defaultHistoryPageSize
	}
	if params.SortBy == "" {
		params.SortBy = "updatedAt"
	}
	if params.SortOrder == "" {
		params.SortOrder = "desc"
	}

	records, pagination, err := h.client.ListDailyProgress(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing daily reports: %w", err)
	}
	return records, pagination, nil
}
