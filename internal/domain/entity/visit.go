package entity

// VisitEntry is the historical record of one consultation. Responses map
// template field ids to the values captured at the time of the visit, so
// later template edits never invalidate an existing entry.
type VisitEntry struct {
	ID         string            `json:"id"`
	DoctorID   string            `json:"doctorId" validate:"required"`
	PatientID  string            `json:"patientId" validate:"required"`
	Date       string            `json:"date" validate:"required"`
	TemplateID string            `json:"templateId"`
	Responses  map[string]string `json:"responses"`
}
