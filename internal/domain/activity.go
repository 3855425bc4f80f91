package domain

import "time"

const (
	ActivityCall    = "call"
	ActivityEmail   = "email"
	ActivityMeeting = "meeting"
	ActivityTask    = "task"
)

type Activity struct {
	ID            string     `json:"id"`
	Owner         string     `json:"owner"`
	Type          string     `json:"type"`
	Subject       string     `json:"subject"`
	Notes         string     `json:"notes,omitempty"`
	Due           *time.Time `json:"due,omitempty"`
	Done          bool       `json:"done"`
	ContactID     *string    `json:"contactId,omitempty"`
	OpportunityID *string    `json:"opportunityId,omitempty"`
	CDate         time.Time  `json:"cdate"`
	MDate         time.Time  `json:"mdate"`
}
