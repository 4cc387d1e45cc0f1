package rate

import (
	"context"
	"fmt"
	"math"
	"strings"

	"counselhub/config"
	rateRepo "counselhub/database/repository/rate"
	"counselhub/models"

	"go.uber.org/zap"
)

// lookupStep is one tagged strategy of the fallback cascade, tried in
// order; the next step runs only when the previous returned no record.
type lookupStep struct {
	tag   string
	query rateRepo.RateQuery
}

// Resolve walks the lookup cascade:
//
//  1. exact (counsellor, service, hour window, country, nationality)
//  2. same without the service constraint
//  3. default rate with service; when found, re-attempt 1 and 2 with the
//     default record's country paired with the original nationality, and
//     fall back to the default record itself
//  4. default rate without service, re-paired the same way
//
// The resolved amount is converted into the client-facing currency and
// rounded to 2 decimal places. Default records bill in the baseline
// reference currency rather than a country's local one.
func (r *DefaultRateResolver) Resolve(ctx context.Context, counsellorID, serviceID string, durationHours int, country, nationality string) (*models.ResolvedRate, error) {
	record, err := r.lookup(ctx, counsellorID, serviceID, durationHours, country, nationality)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNoRateDefined
	}

	clientCurrency := r.BaselineCurrency
	if !record.IsDefault {
		clientCurrency = r.currencyFor(record.Country)
	}

	amount := math.Round(record.Rate*100) / 100
	if record.Currency != clientCurrency {
		amount, err = r.Converter.Convert(ctx, record.Rate, record.Currency, clientCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency conversion failed: %w", err)
		}
		amount = math.Round(amount*100) / 100
	}

	r.Logger.Debug("rate resolved",
		zap.String("counsellorId", counsellorID),
		zap.String("rateId", record.ID),
		zap.Bool("default", record.IsDefault),
		zap.String("currency", clientCurrency))

	return &models.ResolvedRate{Record: *record, Amount: amount, Currency: clientCurrency}, nil
}

func (r *DefaultRateResolver) lookup(ctx context.Context, counsellorID, serviceID string, durationHours int, country, nationality string) (*models.RateRecord, error) {
	exact := func(country string) []lookupStep {
		return []lookupStep{
			{
				tag: "exact",
				query: rateRepo.RateQuery{
					CounsellorID: counsellorID,
					ServiceID:    serviceID,
					WithService:  true,
					HourFrom:     0,
					HourTo:       durationHours,
					Country:      country,
					Nationality:  nationality,
				},
			},
			{
				tag: "exactNoService",
				query: rateRepo.RateQuery{
					CounsellorID: counsellorID,
					HourFrom:     0,
					HourTo:       durationHours,
					Country:      country,
					Nationality:  nationality,
				},
			},
		}
	}

	if record, err := r.firstMatch(ctx, exact(country)); record != nil || err != nil {
		return record, err
	}

	defaults := []lookupStep{
		{
			tag: "defaultWithService",
			query: rateRepo.RateQuery{
				CounsellorID: counsellorID,
				ServiceID:    serviceID,
				WithService:  true,
				HourFrom:     0,
				HourTo:       durationHours,
				DefaultOnly:  true,
			},
		},
		{
			tag: "defaultNoService",
			query: rateRepo.RateQuery{
				CounsellorID: counsellorID,
				HourFrom:     0,
				HourTo:       durationHours,
				DefaultOnly:  true,
			},
		},
	}

	for _, step := range defaults {
		def, err := r.firstMatch(ctx, []lookupStep{step})
		if err != nil {
			return nil, err
		}
		if def == nil {
			continue
		}
		// Re-attempt the exact lookups with the default record's country
		// paired with the original nationality.
		if def.Country != "" && def.Country != country {
			if record, err := r.firstMatch(ctx, exact(def.Country)); record != nil || err != nil {
				return record, err
			}
		}
		return def, nil
	}

	return nil, nil
}

func (r *DefaultRateResolver) firstMatch(ctx context.Context, steps []lookupStep) (*models.RateRecord, error) {
	for _, step := range steps {
		records, err := r.Repo.Find(ctx, step.query)
		if err != nil {
			return nil, fmt.Errorf("rate lookup %s failed: %w", step.tag, err)
		}
		if len(records) > 0 {
			return &records[0], nil
		}
	}
	return nil, nil
}

func (r *DefaultRateResolver) currencyFor(country string) string {
	if currency, ok := config.CountryCurrencyMap[strings.ToUpper(country)]; ok {
		return currency
	}
	return r.BaselineCurrency
}
