package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Pantry Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Login godoc
// @Summary Log in to the household
// @Description Exchange the household password for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{password=string} true "Household password"
// @Success 200 {object} object{success=bool,data=object{token=string}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/auth/login [post]
func (h *PantryHandler) LoginDoc() {}

// ListConsumables godoc
// @Summary List consumables
// @Description Consumable types joined with category and inventory state
// @Tags Consumables
// @Security BearerAuth
// @Produce json
// @Param category_id query int false "Filter by category"
// @Success 200 {object} object{success=bool,data=[]object}
// @Router /api/consumables [get]
func (h *PantryHandler) ListConsumablesDoc() {}

// CreateConsumable godoc
// @Summary Create a consumable
// @Description Create a consumable type with a zero-quantity inventory row
// @Tags Consumables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{category_id=int,name=string,unit=string,default_usage_rate=number,usage_rate_period=string,min_stock_level=number,notes=string} true "Consumable fields"
// @Success 201 {object} object{success=bool,data=object{id=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/consumables [post]
func (h *PantryHandler) CreateConsumableDoc() {}

// CreatePurchase godoc
// @Summary Record a purchase
// @Description Insert a purchase and increment the inventory in one transaction
// @Tags Purchases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{consumable_type_id=int,quantity=number,purchase_date=string,price=number,notes=string} true "Purchase fields"
// @Success 201 {object} object{success=bool,data=object{id=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/purchases [post]
func (h *PantryHandler) CreatePurchaseDoc() {}

// GetDashboard godoc
// @Summary Restock dashboard
// @Description All consumables with days-until-empty and restock flags, most urgent first
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=[]object}
// @Router /api/dashboard [get]
func (h *PantryHandler) GetDashboardDoc() {}

// GetStats godoc
// @Summary Inventory statistics
// @Description Needs-purchase, total-items and recent-purchase counts
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/stats [get]
func (h *PantryHandler) GetStatsDoc() {}
