package domain

import "time"

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

type Lead struct {
	ID                 string    `json:"id"`
	Owner              string    `json:"owner"`
	Name               string    `json:"name"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Source             string    `json:"source,omitempty"`
	Status             string    `json:"status"`
	Notes              string    `json:"notes,omitempty"`
	ConvertedContactID *string   `json:"convertedContactId,omitempty"`
	CDate              time.Time `json:"cdate"`
	MDate              time.Time `json:"mdate"`
}
