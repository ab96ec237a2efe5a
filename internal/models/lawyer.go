package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type ExternalLinks struct {
	JusBrasil string `json:"jusbrasil,omitempty"`
	Website   string `json:"website,omitempty"`
}

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

func (s SocialLinks) Value() (driver.Value, error)  { return json.Marshal(s) }
func (s *SocialLinks) Scan(src any) error           { return scanJSON(src, s) }
func (e ExternalLinks) Value() (driver.Value, error) { return json.Marshal(e) }
func (e *ExternalLinks) Scan(src any) error          { return scanJSON(src, e) }

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported column type for JSON scan")
	}
}

type Lawyer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	OabNumber string `gorm:"size:20;uniqueIndex;not null" json:"oab_number"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:20;not null" json:"phone"`
	Address   string `gorm:"size:255;not null" json:"address"`
	Slug      string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	HashedPassword string `gorm:"size:255;not null" json:"-"`

	Description      string        `gorm:"size:1000" json:"description"`
	AreasOfExpertise StringList    `gorm:"type:jsonb" json:"areas_of_expertise"`
	SocialLinks      SocialLinks   `gorm:"type:jsonb" json:"social_links"`
	ExternalLinks    ExternalLinks `gorm:"type:jsonb" json:"external_links"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
