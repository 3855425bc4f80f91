package domain

import "time"

type Expense struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes,omitempty"`
	CDate       time.Time `json:"cdate"`
	MDate       time.Time `json:"mdate"`
}
