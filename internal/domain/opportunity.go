package domain

import "time"

const (
	StageProspecting   = "prospecting"
	StageQualification = "qualification"
	StageProposal      = "proposal"
	StageNegotiation   = "negotiation"
	StageClosedWon     = "closed_won"
	StageClosedLost    = "closed_lost"
)

type Opportunity struct {
	ID          string     `json:"id"`
	Owner       string     `json:"owner"`
	Name        string     `json:"name"`
	Stage       string     `json:"stage"`
	Amount      float64    `json:"amount"`
	Probability int        `json:"probability"`
	CloseDate   *time.Time `json:"closeDate,omitempty"`
	ContactID   *string    `json:"contactId,omitempty"`
	CompanyID   *string    `json:"companyId,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CDate       time.Time  `json:"cdate"`
	MDate       time.Time  `json:"mdate"`
}

// ValidStage reports whether s is one of the known pipeline stages.
func ValidStage(s string) bool {
	switch s {
	case StageProspecting, StageQualification, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}
