package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// TemplateSlot is a day-of-week pattern entry, not yet bound to a date.
// Day is 1-indexed from Monday (1 = Monday .. 7 = Sunday).
type TemplateSlot struct {
	Day         int    `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

// ScheduleSlot is a template slot bound to a concrete calendar date.
type ScheduleSlot struct {
	Day         int    `json:"day"`
	Date        string `json:"date"` // YYYY-MM-DD
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type TemplateSlotList []TemplateSlot

func (l TemplateSlotList) Value() (driver.Value, error) {
	if l == nil {
		l = TemplateSlotList{}
	}
	return json.Marshal(l)
}

func (l *TemplateSlotList) Scan(src any) error { return scanJSON(src, l) }

type ScheduleSlotList []ScheduleSlot

func (l ScheduleSlotList) Value() (driver.Value, error) {
	if l == nil {
		l = ScheduleSlotList{}
	}
	return json.Marshal(l)
}

func (l *ScheduleSlotList) Scan(src any) error { return scanJSON(src, l) }

type ScheduleTemplate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LawyerID uint   `gorm:"index;not null" json:"lawyer_id"`
	Lawyer   Lawyer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name      string           `gorm:"size:100;not null" json:"name"`
	TimeSlots TemplateSlotList `gorm:"type:jsonb" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WeeklySchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LawyerID uint   `gorm:"index;not null" json:"lawyer_id"`
	Lawyer   Lawyer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	WeekStartDate time.Time        `gorm:"type:date;index" json:"week_start_date"`
	TimeSlots     ScheduleSlotList `gorm:"type:jsonb" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
