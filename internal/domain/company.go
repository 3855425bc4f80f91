package domain

import "time"

// Company is an organization record. Contacts holds the member set of
// Contact ids; duplicates are forbidden, order is not significant.
type Company struct {
	ID       string    `json:"id"`
	Owner    string    `json:"owner"`
	Name     string    `json:"name"`
	Website  string    `json:"website,omitempty"`
	Industry string    `json:"industry,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Address  string    `json:"address,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Contacts []string  `json:"contacts"`
	CDate    time.Time `json:"cdate"`
	MDate    time.Time `json:"mdate"`
}

// HasContact reports whether the member set contains the contact id.
func (c Company) HasContact(id string) bool {
	for _, member := range c.Contacts {
		if member == id {
			return true
		}
	}
	return false
}

// AddContact appends the contact id to the member set. No-op on duplicates.
func (c *Company) AddContact(id string) {
	if c.HasContact(id) {
		return
	}
	c.Contacts = append(c.Contacts, id)
}

// RemoveContact deletes the contact id from the member set. No-op if absent.
func (c *Company) RemoveContact(id string) {
	out := c.Contacts[:0]
	for _, member := range c.Contacts {
		if member != id {
			out = append(out, member)
		}
	}
	c.Contacts = out
}
