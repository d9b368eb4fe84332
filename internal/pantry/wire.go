//go:build wireinject
// +build wireinject

package pantry

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/delivery/http"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/repository"
	"github.com/eh112358/home-inventory-dashboard/pkg/auth"
)

// ProvidePantryRepository provides the pantry repository with tracing
func ProvidePantryRepository(db *gorm.DB) domain.PantryRepository {
	return repository.NewGormPantryRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePantryRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, tokens *auth.Manager, passwordHash string, cache *http.ResponseCache) (*http.PantryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewPantryHandler,
	)
	return nil, nil
}
