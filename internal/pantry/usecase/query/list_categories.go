package query

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

// ListCategoriesQuery represents the query to list all categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles the list categories query
type ListCategoriesHandler struct {
	repo domain.PantryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.PantryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query, ordered by name
func (h *ListCategoriesHandler) Handle(ListCategoriesQuery) ([]domain.Category, error) {
	return h.repo.ListCategories()
}
