package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LawyerID uint   `gorm:"index;not null" json:"lawyer_id"`
	Lawyer   Lawyer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Calendar day of the appointment; time of day lives in StartTime/EndTime.
	Date      time.Time `gorm:"type:date;index:idx_appointments_lawyer_date" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	// true = client-facing consultation, false = private commitment
	IsPublic bool `gorm:"default:true" json:"is_public"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Private appointment fields
	Title       string `gorm:"size:150" json:"title,omitempty"`
	Description string `gorm:"size:1000" json:"description,omitempty"`

	// Public appointment fields (client data)
	ClientName        string     `gorm:"size:100" json:"client_name,omitempty"`
	ClientCpf         string     `gorm:"size:14" json:"client_cpf,omitempty"`
	ClientBirthDate   *time.Time `gorm:"type:date" json:"client_birth_date,omitempty"`
	ClientEmail       string     `gorm:"size:100" json:"client_email,omitempty"`
	ClientPhone       string     `gorm:"size:20" json:"client_phone,omitempty"`
	ClientAddress     string     `gorm:"size:255" json:"client_address,omitempty"`
	AppointmentReason string     `gorm:"size:500" json:"appointment_reason,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	NoShowAt    *time.Time `json:"no_show_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
