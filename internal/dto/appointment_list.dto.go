package dto

import "github.com/gtkpad369/LegalSch/internal/models"

type AppointmentListDTO struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
	IsPublic   bool   `json:"is_public"`
	Title      string `json:"title,omitempty"`
	ClientName string `json:"client_name,omitempty"`
}

func ToAppointmentList(items []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(items))
	for _, ap := range items {
		out = append(out, AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date.Format("2006-01-02"),
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			Status:     ap.Status,
			IsPublic:   ap.IsPublic,
			Title:      ap.Title,
			ClientName: ap.ClientName,
		})
	}
	return out
}
