package domain

import "time"

type Competitor struct {
	ID         string    `json:"id"`
	Owner      string    `json:"owner"`
	Name       string    `json:"name"`
	Website    string    `json:"website,omitempty"`
	Strengths  string    `json:"strengths,omitempty"`
	Weaknesses string    `json:"weaknesses,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CDate      time.Time `json:"cdate"`
	MDate      time.Time `json:"mdate"`
}
