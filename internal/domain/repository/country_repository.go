// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CountryRepository serves the static country-to-cities lookup shown on
// the checkout form. Seed data only; there is no mutator.
type CountryRepository interface {
	// List retrieves all countries with their cities.
	List(ctx context.Context) ([]*entity.Country, error)
}
