package models

import (
	"time"
)

type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	Owner     string    `json:"owner" gorm:"type:text;index;not null"`
	FirstName string    `json:"firstName" gorm:"type:text"`
	LastName  string    `json:"lastName" gorm:"type:text"`
	Email     string    `json:"email" gorm:"type:text"`
	Phone     string    `json:"phone" gorm:"type:text"`
	Title     string    `json:"title" gorm:"type:text"`
	Source    string    `json:"source" gorm:"type:text"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CompanyID *string   `json:"companyId" gorm:"type:text;index"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate     time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type Company struct {
	ID       string    `json:"id" gorm:"primaryKey;type:text"`
	Owner    string    `json:"owner" gorm:"type:text;index;not null"`
	Name     string    `json:"name" gorm:"type:text;not null"`
	Website  string    `json:"website" gorm:"type:text"`
	Industry string    `json:"industry" gorm:"type:text"`
	Phone    string    `json:"phone" gorm:"type:text"`
	Address  string    `json:"address" gorm:"type:text"`
	Notes    string    `json:"notes" gorm:"type:text"`
	Contacts string    `json:"contacts" gorm:"type:json;default:'[]'"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate    time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type Opportunity struct {
	ID          string     `json:"id" gorm:"primaryKey;type:text"`
	Owner       string     `json:"owner" gorm:"type:text;index;not null"`
	Name        string     `json:"name" gorm:"type:text;not null"`
	Stage       string     `json:"stage" gorm:"type:text;index"`
	Amount      float64    `json:"amount" gorm:"type:numeric;default:0"`
	Probability int        `json:"probability" gorm:"type:integer;default:0"`
	CloseDate   *time.Time `json:"closeDate" gorm:"type:timestamp with time zone"`
	ContactID   *string    `json:"contactId" gorm:"type:text;index"`
	CompanyID   *string    `json:"companyId" gorm:"type:text;index"`
	Notes       string     `json:"notes" gorm:"type:text"`
	CDate       time.Time  `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate       time.Time  `json:"mdate" gorm:"autoUpdateTime"`
}

type Activity struct {
	ID            string     `json:"id" gorm:"primaryKey;type:text"`
	Owner         string     `json:"owner" gorm:"type:text;index;not null"`
	Type          string     `json:"type" gorm:"type:text;index"`
	Subject       string     `json:"subject" gorm:"type:text"`
	Notes         string     `json:"notes" gorm:"type:text"`
	Due           *time.Time `json:"due" gorm:"type:timestamp with time zone"`
	Done          bool       `json:"done" gorm:"type:boolean;not null;default:false"`
	ContactID     *string    `json:"contactId" gorm:"type:text;index"`
	OpportunityID *string    `json:"opportunityId" gorm:"type:text;index"`
	CDate         time.Time  `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate         time.Time  `json:"mdate" gorm:"autoUpdateTime"`
}

type Lead struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:text"`
	Owner              string    `json:"owner" gorm:"type:text;index;not null"`
	Name               string    `json:"name" gorm:"type:text;not null"`
	Email              string    `json:"email" gorm:"type:text"`
	Phone              string    `json:"phone" gorm:"type:text"`
	Source             string    `json:"source" gorm:"type:text"`
	Status             string    `json:"status" gorm:"type:text;index"`
	Notes              string    `json:"notes" gorm:"type:text"`
	ConvertedContactID *string   `json:"convertedContactId" gorm:"type:text"`
	CDate              time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate              time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	Owner       string    `json:"owner" gorm:"type:text;index;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"type:text;index"`
	Amount      float64   `json:"amount" gorm:"type:numeric;default:0"`
	Date        time.Time `json:"date" gorm:"type:timestamp with time zone"`
	Notes       string    `json:"notes" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type Competitor struct {
	ID         string    `json:"id" gorm:"primaryKey;type:text"`
	Owner      string    `json:"owner" gorm:"type:text;index;not null"`
	Name       string    `json:"name" gorm:"type:text;not null"`
	Website    string    `json:"website" gorm:"type:text"`
	Strengths  string    `json:"strengths" gorm:"type:text"`
	Weaknesses string    `json:"weaknesses" gorm:"type:text"`
	Notes      string    `json:"notes" gorm:"type:text"`
	CDate      time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate      time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type Settings struct {
	Owner       string    `json:"owner" gorm:"primaryKey;type:text"`
	CompanyName string    `json:"companyName" gorm:"type:text"`
	Currency    string    `json:"currency" gorm:"type:text"`
	Timezone    string    `json:"timezone" gorm:"type:text"`
	Language    string    `json:"language" gorm:"type:text"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	Email        string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	Name         string    `json:"name" gorm:"type:text"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
