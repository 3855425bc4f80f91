package domain

// Page is the common pagination window. Limit is clamped by the handlers
// before it reaches a repository.
type Page struct {
	Limit  int
	Offset int
}

type ContactFilter struct {
	Search    string
	CompanyID string
	Page      Page
}

type CompanyFilter struct {
	Search   string
	Industry string
	Page     Page
}

type OpportunityFilter struct {
	Search    string
	Stage     string
	CompanyID string
	ContactID string
	Page      Page
}

type ActivityFilter struct {
	Search    string
	Type      string
	Done      *bool
	ContactID string
	Page      Page
}

type LeadFilter struct {
	Search string
	Status string
	Source string
	Page   Page
}

type ExpenseFilter struct {
	Search   string
	Category string
	Page     Page
}

type CompetitorFilter struct {
	Search string
	Page   Page
}
