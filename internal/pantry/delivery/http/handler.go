package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/usecase/command"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/usecase/query"
	"github.com/eh112358/home-inventory-dashboard/pkg/auth"
	"github.com/eh112358/home-inventory-dashboard/pkg/logger"
)

// PantryHandler handles HTTP requests for the household inventory
type PantryHandler struct {
	createConsumable *command.CreateConsumableHandler
	updateConsumable *command.UpdateConsumableHandler
	deleteConsumable *command.DeleteConsumableHandler
	setInventory     *command.SetInventoryHandler
	createPurchase   *command.CreatePurchaseHandler
	deletePurchase   *command.DeletePurchaseHandler
	setUsageRate     *command.SetUsageRateHandler
	logUsage         *command.LogUsageHandler
	importState      *command.ImportStateHandler

	listCategories  *query.ListCategoriesHandler
	listConsumables *query.ListConsumablesHandler
	listPurchases   *query.ListPurchasesHandler
	listUsage       *query.ListUsageHandler
	getDashboard    *query.GetDashboardHandler
	getStats        *query.GetStatsHandler
	exportState     *query.ExportStateHandler

	tokens       *auth.Manager
	passwordHash string
	cache        *ResponseCache
}

// NewPantryHandler creates a new pantry handler
func NewPantryHandler(repo domain.PantryRepository, tokens *auth.Manager, passwordHash string, cache *ResponseCache) *PantryHandler {
	return &PantryHandler{
		createConsumable: command.NewCreateConsumableHandler(repo),
		updateConsumable: command.NewUpdateConsumableHandler(repo),
		deleteConsumable: command.NewDeleteConsumableHandler(repo),
		setInventory:     command.NewSetInventoryHandler(repo),
		createPurchase:   command.NewCreatePurchaseHandler(repo),
		deletePurchase:   command.NewDeletePurchaseHandler(repo),
		setUsageRate:     command.NewSetUsageRateHandler(repo),
		logUsage:         command.NewLogUsageHandler(repo),
		importState:      command.NewImportStateHandler(repo),
		listCategories:   query.NewListCategoriesHandler(repo),
		listConsumables:  query.NewListConsumablesHandler(repo),
		listPurchases:    query.NewListPurchasesHandler(repo),
		listUsage:        query.NewListUsageHandler(repo),
		getDashboard:     query.NewGetDashboardHandler(repo),
		getStats:         query.NewGetStatsHandler(repo),
		exportState:      query.NewExportStateHandler(repo),
		tokens:           tokens,
		passwordHash:     passwordHash,
		cache:            cache,
	}
}

// Response is the uniform JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Login handles POST /api/auth/login
func (h *PantryHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	if !auth.CheckPassword(h.passwordHash, req.Password) {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid password",
		})
		return
	}

	token, err := h.tokens.GenerateToken()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to generate session token")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to create session",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"token": token},
	})
}

// CheckAuth handles GET /api/auth/check
func (h *PantryHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	authenticated := false
	if token := bearerToken(r); token != "" {
		if _, err := h.tokens.ValidateToken(token); err == nil {
			authenticated = true
		}
	}
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"authenticated": authenticated},
	})
}

// ListCategories handles GET /api/categories
func (h *PantryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategories.Handle(query.ListCategoriesQuery{})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// consumableRequest carries consumable create/update fields. Optional fields
// are pointers so the validators can tell absent from zero.
type consumableRequest struct {
	CategoryID       uint     `json:"category_id"`
	Name             *string  `json:"name"`
	Unit             *string  `json:"unit"`
	DefaultUsageRate *float64 `json:"default_usage_rate"`
	UsageRatePeriod  *string  `json:"usage_rate_period"`
	MinStockLevel    *float64 `json:"min_stock_level"`
	Notes            *string  `json:"notes"`
}

func (req consumableRequest) toCommand() command.CreateConsumableCommand {
	return command.CreateConsumableCommand{
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Unit:             req.Unit,
		DefaultUsageRate: req.DefaultUsageRate,
		UsageRatePeriod:  req.UsageRatePeriod,
		MinStockLevel:    req.MinStockLevel,
		Notes:            req.Notes,
	}
}

// ListConsumables handles GET /api/consumables
func (h *PantryHandler) ListConsumables(w http.ResponseWriter, r *http.Request) {
	var categoryID uint
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.respondErr(w, r, domain.NewValidationError("category_id", "must be a numeric id"))
			return
		}
		categoryID = uint(parsed)
	}

	consumables, err := h.listConsumables.Handle(query.ListConsumablesQuery{CategoryID: categoryID})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: consumables})
}

// CreateConsumable handles POST /api/consumables
func (h *PantryHandler) CreateConsumable(w http.ResponseWriter, r *http.Request) {
	var req consumableRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	ct, err := h.createConsumable.Handle(req.toCommand())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.flushCache(r)
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Consumable created successfully",
		Data:    map[string]uint{"id": ct.ID},
	})
}

// UpdateConsumable handles PUT /api/consumables/{id}
func (h *PantryHandler) UpdateConsumable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	var req consumableRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	err = h.updateConsumable.Handle(command.UpdateConsumableCommand{
		ID:                      id,
		CreateConsumableCommand: req.toCommand(),
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.flushCache(r)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Consumable updated successfully"})
}

// DeleteConsumable handles DELETE /api/consumables/{id}
func (h *PantryHandler) DeleteConsumable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if err := h.deleteConsumable.Handle(command.DeleteConsumableCommand{ID: id}); err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.flushCache(r)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Consumable deleted successfully"})
}

// SetInventory handles PUT /api/inventory/{consumable_id}
func (h *PantryHandler) SetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "consumable_id")
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	var req struct {
		CurrentQuantity *float64 `json:"current_quantity"`
		CustomUsageRate *float64 `json:"custom_usage_rate"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	err = h.setInventory.Handle(command.SetInventoryCommand{
		ConsumableTypeID: id,
		CurrentQuantity:  req.CurrentQuantity,
		CustomUsageRate:  req.CustomUsageRate,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.flushCache(r)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Inventory updated successfully"})
}

// ListPurchases handles GET /api/purchases
func (h *PantryHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	var consumableID uint
	if raw := r.URL.Query().Get("consumable_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.respondErr(w, r, domain.NewValidationError("consumable_id", "must be a numeric id"))
			return
		}
		consumableID = uint(parsed)
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	purchases, err := h.listPurchases.Handle(query.ListPurchasesQuery{
		ConsumableTypeID: consumableID,
		Limit:            limit,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: purchases})
}

// CreatePurchase handles POST /api/purchases
func (h *PantryHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConsumableTypeID uint     `json:"consumable_type_id"`
		Quantity         *float64 `json:"quantity"`
		PurchaseDate     *string  `json:"purchase_date"`
		Price            *float64 `json:"price"`
		Notes            *string  `json:"notes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	purchase, err := h.createPurchase.Handle(command.CreatePurchaseCommand{
		ConsumableTypeID: req.ConsumableTypeID,
		Quantity:         req.Quantity,
		PurchaseDate:     req.PurchaseDate,
		Price:            req.Price,
		Notes:            req.Notes,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.flushCache(r)
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Purchase recorded successfully",
		Data:    map[string]uint{"id": purchase.ID},
	})
}

// DeletePurchase handles DELETE /api/purchases/{id}
func (h *PantryHandler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if err := h.deletePurchase.Handle(command.DeletePurchaseCommand{ID: id}); err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.flushCache(r)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Purchase deleted successfully"})
}

// SetUsageRate handles PUT /api/usage-rate/{consumable_id}
func (h *PantryHandler) SetUsageRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "consumable_id")
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	var req struct {
		UsageRate *float64 `json:"usage_rate"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	err = h.setUsageRate.Handle(command.SetUsageRateCommand{
		ConsumableTypeID: id,
		UsageRate:        req.UsageRate,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.flushCache(r)
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Usage rate updated successfully"})
}

// LogUsage handles POST /api/usage
func (h *PantryHandler) LogUsage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConsumableTypeID uint     `json:"consumable_type_id"`
		QuantityUsed     *float64 `json:"quantity_used"`
		UsageDate        *string  `json:"usage_date"`
		Notes            *string  `json:"notes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	entry, err := h.logUsage.Handle(command.LogUsageCommand{
		ConsumableTypeID: req.ConsumableTypeID,
		QuantityUsed:     req.QuantityUsed,
		UsageDate:        req.UsageDate,
		Notes:            req.Notes,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Usage recorded successfully",
		Data:    map[string]uint{"id": entry.ID},
	})
}

// ListUsage handles GET /api/usage
func (h *PantryHandler) ListUsage(w http.ResponseWriter, r *http.Request) {
	var consumableID uint
	if raw := r.URL.Query().Get("consumable_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.respondErr(w, r, domain.NewValidationError("consumable_id", "must be a numeric id"))
			return
		}
		consumableID = uint(parsed)
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.listUsage.Handle(query.ListUsageQuery{
		ConsumableTypeID: consumableID,
		Limit:            limit,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: logs})
}

// GetDashboard handles GET /api/dashboard
func (h *PantryHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	items, err := h.getDashboard.Handle(query.GetDashboardQuery{})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// GetStats handles GET /api/stats
func (h *PantryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.getStats.Handle(query.GetStatsQuery{})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

// ExportState handles GET /api/export
func (h *PantryHandler) ExportState(w http.ResponseWriter, r *http.Request) {
	state, err := h.exportState.Handle(query.ExportStateQuery{})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// ImportState handles POST /api/import
func (h *PantryHandler) ImportState(w http.ResponseWriter, r *http.Request) {
	blob, err := readBody(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	result, err := h.importState.Handle(command.ImportStateCommand{Blob: blob})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.flushCache(r)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "State imported successfully",
		Data:    result,
	})
}

// RegisterRoutes registers all pantry routes. Login and the auth probe stay
// outside the session check.
func (h *PantryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/api/auth/check", h.CheckAuth).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(h.AuthMiddleware)

	api.HandleFunc("/categories", h.ListCategories).Methods("GET")

	api.HandleFunc("/consumables", h.ListConsumables).Methods("GET")
	api.HandleFunc("/consumables", h.CreateConsumable).Methods("POST")
	api.HandleFunc("/consumables/{id}", h.UpdateConsumable).Methods("PUT")
	api.HandleFunc("/consumables/{id}", h.DeleteConsumable).Methods("DELETE")

	api.HandleFunc("/inventory/{consumable_id}", h.SetInventory).Methods("PUT")

	api.HandleFunc("/purchases", h.ListPurchases).Methods("GET")
	api.HandleFunc("/purchases", h.CreatePurchase).Methods("POST")
	api.HandleFunc("/purchases/{id}", h.DeletePurchase).Methods("DELETE")

	api.HandleFunc("/usage-rate/{consumable_id}", h.SetUsageRate).Methods("PUT")

	api.HandleFunc("/usage", h.LogUsage).Methods("POST")
	api.HandleFunc("/usage", h.ListUsage).Methods("GET")

	api.Handle("/dashboard", h.cache.Middleware(http.HandlerFunc(h.GetDashboard))).Methods("GET")
	api.Handle("/stats", h.cache.Middleware(http.HandlerFunc(h.GetStats))).Methods("GET")

	api.HandleFunc("/export", h.ExportState).Methods("GET")
	api.HandleFunc("/import", h.ImportState).Methods("POST")
}

// respondErr maps domain errors onto HTTP statuses. Storage failures are
// reported opaquely; the transaction has already been rolled back.
func (h *PantryHandler) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	var nfe *domain.NotFoundError
	var ce *domain.ConflictError

	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: ve.Error()})
	case errors.As(err, &nfe):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: nfe.Error()})
	case errors.As(err, &ce):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: ce.Error()})
	default:
		logger.Error(r.Context()).Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal storage failure"})
	}
}

func (h *PantryHandler) flushCache(r *http.Request) {
	h.cache.Flush(r.Context())
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
