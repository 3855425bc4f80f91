package domain

import "time"

// Settings is the per-owner workspace configuration. One row per owner,
// created with defaults on first read.
type Settings struct {
	Owner       string    `json:"owner"`
	CompanyName string    `json:"companyName,omitempty"`
	Currency    string    `json:"currency"`
	Timezone    string    `json:"timezone"`
	Language    string    `json:"language"`
	MDate       time.Time `json:"mdate"`
}

// DefaultSettings are applied when an owner has no stored settings yet.
func DefaultSettings(owner string) Settings {
	return Settings{
		Owner:    owner,
		Currency: "USD",
		Timezone: "UTC",
		Language: "en",
	}
}
