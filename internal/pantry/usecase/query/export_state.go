package query

import (
	"github.com/google/uuid"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

// ExportStateQuery represents the query to export the full persisted state
type ExportStateQuery struct{}

// ExportStateHandler handles state export
type ExportStateHandler struct {
	repo domain.PantryRepository
}

// NewExportStateHandler creates a new export state handler
func NewExportStateHandler(repo domain.PantryRepository) *ExportStateHandler {
	return &ExportStateHandler{repo: repo}
}

// Handle reads the entire state as a portable blob, stamped with the format
// signature and a unique export id.
func (h *ExportStateHandler) Handle(ExportStateQuery) (*domain.StateExport, error) {
	state, err := h.repo.ExportState()
	if err != nil {
		return nil, err
	}
	state.ExportID = uuid.NewString()
	return state, nil
}
