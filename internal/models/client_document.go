package models

import "time"

// ClientDocument is a file a client attached to a public appointment.
// Files live in object storage under StorageKey and expire after the
// configured retention window.
type ClientDocument struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FileName     string `gorm:"size:255;not null" json:"file_name"`
	FileType     string `gorm:"size:100;not null" json:"file_type"`
	FileSize     int64  `json:"file_size"`
	DocumentType string `gorm:"size:50;not null" json:"document_type"` // identification, residence_proof, other
	StorageKey   string `gorm:"size:255;uniqueIndex;not null" json:"-"`

	UploadDate     time.Time `json:"upload_date"`
	ExpirationDate time.Time `gorm:"index" json:"expiration_date"`
}

// DocumentRequirement lists which documents a lawyer asks for per process type.
type DocumentRequirement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LawyerID uint   `gorm:"index;not null" json:"lawyer_id"`
	Lawyer   Lawyer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ProcessType       string     `gorm:"size:100;not null" json:"process_type"`
	RequiredDocuments StringList `gorm:"type:jsonb" json:"required_documents"`

	CreatedAt time.Time `json:"created_at"`
}
