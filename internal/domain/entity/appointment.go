package entity

import "time"

// Appointment is a scheduled booking of a patient with a doctor.
// Start must be strictly before End.
type Appointment struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctorId" validate:"required"`
	PatientID string    `json:"patientId" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Start     time.Time `json:"start" validate:"required"`
	End       time.Time `json:"end" validate:"required"`
}

// Overlaps reports whether two appointments occupy intersecting time
// under half-open interval semantics: appointments that merely touch
// at an endpoint (a.End == b.Start) do not overlap. Symmetric.
func (a *Appointment) Overlaps(b Appointment) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Duration returns the scheduled length of the appointment
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}
