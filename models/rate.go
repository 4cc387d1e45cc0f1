package models

// RateRecord is an administratively managed hourly rate for a counsellor.
// Country-specific records price in the country's local currency; a default
// record (IsDefault) prices in the baseline currency and acts as the
// fallback when no country/nationality match exists.
type RateRecord struct {
	ID           string  `bson:"id" json:"id"`
	CounsellorID string  `bson:"counsellorId" json:"counsellorId"`
	ServiceID    string  `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	HourFrom     int     `bson:"hourFrom" json:"hourFrom"`
	HourTo       int     `bson:"hourTo" json:"hourTo"`
	Rate         float64 `bson:"rate" json:"rate"`
	Currency     string  `bson:"currency" json:"currency"`
	Country      string  `bson:"country,omitempty" json:"country,omitempty"`
	Nationality  string  `bson:"nationality,omitempty" json:"nationality,omitempty"`
	IsDefault    bool    `bson:"isDefault" json:"isDefault"`
}

// ResolvedRate is the outcome of the rate lookup cascade: the matched
// record plus the client-facing amount after currency conversion.
type ResolvedRate struct {
	Record   RateRecord `json:"record"`
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
}
