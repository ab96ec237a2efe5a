package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtkpad369/LegalSch/internal/models"
)

func TestMaskBookedSlots(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots := models.ScheduleSlotList{
		{Day: 1, Date: "2026-09-14", StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
		{Day: 1, Date: "2026-09-14", StartTime: "10:00", EndTime: "11:00", IsAvailable: true},
		{Day: 2, Date: "2026-09-15", StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
	}

	booked := []models.Appointment{
		{LawyerID: 1, Date: day, StartTime: "09:30", EndTime: "10:00", Status: "scheduled"},
	}

	masked := maskBookedSlots(slots, booked)
	require.Len(t, masked, 3)

	// The overlapped slot is no longer offered.
	assert.False(t, masked[0].IsAvailable)
	// Back-to-back and other-day slots stay open.
	assert.True(t, masked[1].IsAvailable)
	assert.True(t, masked[2].IsAvailable)
}

func TestMaskBookedSlotsIgnoresTerminalAppointments(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots := models.ScheduleSlotList{
		{Day: 1, Date: "2026-09-14", StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
	}

	booked := []models.Appointment{
		{LawyerID: 1, Date: day, StartTime: "09:00", EndTime: "10:00", Status: "cancelled"},
	}

	masked := maskBookedSlots(slots, booked)
	assert.True(t, masked[0].IsAvailable)
}
