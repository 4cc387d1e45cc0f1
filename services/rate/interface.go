package rate

import (
	"context"

	rateRepo "counselhub/database/repository/rate"
	"counselhub/models"

	"go.uber.org/zap"
)

// CurrencyConverter is the external conversion collaborator.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, fromCurrency, toCurrency string) (float64, error)
}

// RateResolver resolves the billable rate for a booking.
type RateResolver interface {
	Resolve(ctx context.Context, counsellorID, serviceID string, durationHours int, country, nationality string) (*models.ResolvedRate, error)
}

// DefaultRateResolver implements RateResolver over the rate repository,
// applying the country/nationality/default fallback cascade and currency
// conversion.
type DefaultRateResolver struct {
	Repo             rateRepo.RateRepository
	Converter        CurrencyConverter
	BaselineCurrency string
	Logger           *zap.Logger
}
