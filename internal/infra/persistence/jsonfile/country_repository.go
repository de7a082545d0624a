package jsonfile

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// seedCountries is the compiled-in fallback served when countries.json
// is absent. It only needs to cover the checkout form defaults.
var seedCountries = []entity.Country{
	{Name: "United States", Cities: []string{"New York", "Los Angeles", "Chicago", "Houston"}},
	{Name: "United Kingdom", Cities: []string{"London", "Manchester", "Birmingham", "Leeds"}},
	{Name: "Germany", Cities: []string{"Berlin", "Munich", "Hamburg", "Frankfurt"}},
	{Name: "France", Cities: []string{"Paris", "Lyon", "Marseille", "Toulouse"}},
	{Name: "Nigeria", Cities: []string{"Lagos", "Abuja", "Ibadan", "Kano"}},
	{Name: "Canada", Cities: []string{"Toronto", "Vancouver", "Montreal", "Calgary"}},
	{Name: "Australia", Cities: []string{"Sydney", "Melbourne", "Brisbane", "Perth"}},
}

// countryRepository serves the static country lookup from countries.json,
// falling back to the compiled-in seed when the file is absent.
type countryRepository struct {
	collection *Collection[entity.Country]
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository(store *Store) repository.CountryRepository {
	return &countryRepository{
		collection: NewCollection[entity.Country](store, "countries"),
	}
}

// List retrieves all countries with their cities.
func (repo *countryRepository) List(_ context.Context) ([]*entity.Country, error) {
	items, err := repo.collection.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load countries")
	}

	if len(items) == 0 {
		items = seedCountries
	}

	countries := make([]*entity.Country, 0, len(items))
	for i := range items {
		country := items[i]
		countries = append(countries, &country)
	}

	return countries, nil
}
