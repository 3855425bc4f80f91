package domain

const (
	RequesterIdCtxKey = "relata-requesterId"
)

const (
	KindContact     = "contact"
	KindCompany     = "company"
	KindOpportunity = "opportunity"
	KindActivity    = "activity"
	KindLead        = "lead"
	KindExpense     = "expense"
	KindCompetitor  = "competitor"
	KindSettings    = "settings"
	KindUser        = "user"
)
