package rate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	rateRepo "counselhub/database/repository/rate"
	"counselhub/models"
)

// fakeRateRepo is an in-memory RateRepository mirroring the Mongo query
// semantics: empty optional fields match anything.
type fakeRateRepo struct {
	records []models.RateRecord
}

func (f *fakeRateRepo) Create(ctx context.Context, record models.RateRecord) (*models.RateRecord, error) {
	f.records = append(f.records, record)
	return &record, nil
}

func (f *fakeRateRepo) GetByID(ctx context.Context, id string) (*models.RateRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRateRepo) Find(ctx context.Context, q rateRepo.RateQuery) ([]models.RateRecord, error) {
	var out []models.RateRecord
	for _, rec := range f.records {
		if rec.CounsellorID != q.CounsellorID || rec.HourFrom != q.HourFrom || rec.HourTo != q.HourTo {
			continue
		}
		if q.WithService && rec.ServiceID != q.ServiceID {
			continue
		}
		if q.Country != "" && rec.Country != q.Country {
			continue
		}
		if q.Nationality != "" && rec.Nationality != q.Nationality {
			continue
		}
		if q.DefaultOnly && !rec.IsDefault {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeRateRepo) ListByCounsellor(ctx context.Context, counsellorID string) ([]models.RateRecord, error) {
	var out []models.RateRecord
	for _, rec := range f.records {
		if rec.CounsellorID == counsellorID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRateRepo) DeleteByID(ctx context.Context, id string) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// fakeConverter converts with a fixed rate table keyed "FROM->TO".
type fakeConverter struct {
	rates map[string]float64
	calls int
}

func (c *fakeConverter) Convert(ctx context.Context, amount float64, fromCurrency, toCurrency string) (float64, error) {
	c.calls++
	rate, ok := c.rates[fmt.Sprintf("%s->%s", fromCurrency, toCurrency)]
	if !ok {
		return 0, fmt.Errorf("no rate for %s->%s", fromCurrency, toCurrency)
	}
	return amount * rate, nil
}

func newTestResolver(records ...models.RateRecord) (*DefaultRateResolver, *fakeConverter) {
	converter := &fakeConverter{rates: map[string]float64{}}
	return &DefaultRateResolver{
		Repo:             &fakeRateRepo{records: records},
		Converter:        converter,
		BaselineCurrency: "USD",
		Logger:           zap.NewNop(),
	}, converter
}

func TestResolveExactMatch(t *testing.T) {
	resolver, converter := newTestResolver(models.RateRecord{
		ID: "r1", CounsellorID: "c1", ServiceID: "s1",
		HourFrom: 0, HourTo: 1, Rate: 100, Currency: "USD",
		Country: "US", Nationality: "LK",
	})

	resolved, err := resolver.Resolve(context.Background(), "c1", "s1", 1, "US", "LK")
	require.NoError(t, err)
	assert.Equal(t, "r1", resolved.Record.ID)
	assert.Equal(t, "USD", resolved.Currency)
	assert.Equal(t, 100.0, resolved.Amount)
	assert.Zero(t, converter.calls, "no conversion when currencies already match")
}

func TestResolveFallsBackPastService(t *testing.T) {
	resolver, _ := newTestResolver(models.RateRecord{
		ID: "r1", CounsellorID: "c1",
		HourFrom: 0, HourTo: 1, Rate: 80, Currency: "GBP",
		Country: "GB", Nationality: "LK",
	})

	resolved, err := resolver.Resolve(context.Background(), "c1", "s1", 1, "GB", "LK")
	require.NoError(t, err)
	assert.Equal(t, "r1", resolved.Record.ID)
	assert.Equal(t, "GBP", resolved.Currency)
	assert.Equal(t, 80.0, resolved.Amount)
}

func TestResolveDefaultRepairsCountry(t *testing.T) {
	// No record for the requested country; the default carries LK, and an
	// exact LK record exists for the client's nationality.
	resolver, converter := newTestResolver(
		models.RateRecord{
			ID: "def", CounsellorID: "c1", ServiceID: "s1",
			HourFrom: 0, HourTo: 1, Rate: 50, Currency: "USD",
			Country: "LK", IsDefault: true,
		},
		models.RateRecord{
			ID: "lk", CounsellorID: "c1", ServiceID: "s1",
			HourFrom: 0, HourTo: 1, Rate: 9000, Currency: "LKR",
			Country: "LK", Nationality: "GB",
		},
	)

	resolved, err := resolver.Resolve(context.Background(), "c1", "s1", 1, "US", "GB")
	require.NoError(t, err)
	assert.Equal(t, "lk", resolved.Record.ID, "re-paired lookup wins over the default record")
	assert.Equal(t, "LKR", resolved.Currency)
	assert.Equal(t, 9000.0, resolved.Amount)
	assert.Zero(t, converter.calls)
}

func TestResolveDefaultBillsBaselineCurrency(t *testing.T) {
	resolver, _ := newTestResolver(models.RateRecord{
		ID: "def", CounsellorID: "c1", ServiceID: "s1",
		HourFrom: 0, HourTo: 1, Rate: 40, Currency: "USD",
		IsDefault: true,
	})

	// The client is in LK, but a default record bills in the baseline.
	resolved, err := resolver.Resolve(context.Background(), "c1", "s1", 1, "LK", "LK")
	require.NoError(t, err)
	assert.Equal(t, "def", resolved.Record.ID)
	assert.Equal(t, "USD", resolved.Currency)
	assert.Equal(t, 40.0, resolved.Amount)
}

func TestResolveConvertsAndRounds(t *testing.T) {
	resolver, converter := newTestResolver(models.RateRecord{
		ID: "r1", CounsellorID: "c1", ServiceID: "s1",
		HourFrom: 0, HourTo: 1, Rate: 33.333, Currency: "USD",
		Country: "LK", Nationality: "LK",
	})
	converter.rates["USD->LKR"] = 3

	resolved, err := resolver.Resolve(context.Background(), "c1", "s1", 1, "LK", "LK")
	require.NoError(t, err)
	assert.Equal(t, "LKR", resolved.Currency)
	assert.InDelta(t, 100.0, resolved.Amount, 1e-9, "converted amount rounded to 2 dp")
	assert.Equal(t, 1, converter.calls)
}

func TestResolveUsesDurationAsHourWindow(t *testing.T) {
	resolver, _ := newTestResolver(
		models.RateRecord{
			ID: "short", CounsellorID: "c1", ServiceID: "s1",
			HourFrom: 0, HourTo: 1, Rate: 100, Currency: "USD",
			Country: "US", Nationality: "US",
		},
		models.RateRecord{
			ID: "long", CounsellorID: "c1", ServiceID: "s1",
			HourFrom: 0, HourTo: 2, Rate: 180, Currency: "USD",
			Country: "US", Nationality: "US",
		},
	)

	resolved, err := resolver.Resolve(context.Background(), "c1", "s1", 2, "US", "US")
	require.NoError(t, err)
	assert.Equal(t, "long", resolved.Record.ID)
}

func TestResolveNoRateDefined(t *testing.T) {
	resolver, _ := newTestResolver()
	_, err := resolver.Resolve(context.Background(), "c1", "s1", 1, "US", "US")
	assert.ErrorIs(t, err, ErrNoRateDefined)
}
