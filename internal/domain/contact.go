package domain

import "time"

// Contact is a person record. CompanyID optionally points at the Company the
// contact belongs to; the companion reference lives in Company.Contacts and
// both sides are mutated only through the relationship usecase.
type Contact struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Title     string    `json:"title,omitempty"`
	Source    string    `json:"source,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CompanyID *string   `json:"companyId,omitempty"`
	CDate     time.Time `json:"cdate"`
	MDate     time.Time `json:"mdate"`
}

// SameCompany reports whether the contact's current company reference equals
// the given one, nil-safe on both sides. Ids are compared as canonical
// strings, never as raw references.
func (c *Contact) SameCompany(companyID *string) bool {
	if c.CompanyID == nil || companyID == nil {
		return c.CompanyID == nil && companyID == nil
	}
	return *c.CompanyID == *companyID
}
