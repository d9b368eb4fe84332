package command

import (
	"encoding/json"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

// ImportStateCommand represents the command to restore the full persisted
// state from an exported blob.
type ImportStateCommand struct {
	Blob []byte
}

// ImportStateResult summarizes what was restored
type ImportStateResult struct {
	Categories  int `json:"categories"`
	Consumables int `json:"consumables"`
	Inventory   int `json:"inventory"`
	Purchases   int `json:"purchases"`
	UsageLogs   int `json:"usage_logs"`
}

// ImportStateHandler handles state restore
type ImportStateHandler struct {
	repo domain.PantryRepository
}

// NewImportStateHandler creates a new import state handler
func NewImportStateHandler(repo domain.PantryRepository) *ImportStateHandler {
	return &ImportStateHandler{repo: repo}
}

// Handle executes the import. The blob's format signature and version are
// checked before any write; the replacement is transactional, so a failed
// import leaves the previous state intact.
func (h *ImportStateHandler) Handle(cmd ImportStateCommand) (*ImportStateResult, error) {
	var state domain.StateExport
	if err := json.Unmarshal(cmd.Blob, &state); err != nil {
		return nil, domain.NewValidationError("blob", "not a valid state export")
	}
	if state.Signature != domain.StateSignature {
		return nil, domain.NewValidationError("signature", "unrecognized state export signature")
	}
	if state.Version != domain.StateVersion {
		return nil, domain.NewValidationError("version", "unsupported state export version")
	}

	if err := h.repo.ImportState(&state); err != nil {
		return nil, err
	}

	return &ImportStateResult{
		Categories:  len(state.Categories),
		Consumables: len(state.ConsumableTypes),
		Inventory:   len(state.Inventory),
		Purchases:   len(state.Purchases),
		UsageLogs:   len(state.UsageLogs),
	}, nil
}
