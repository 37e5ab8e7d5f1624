package entity

// Patient represents a patient record scoped to exactly one doctor
type Patient struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	HistoryDate string `json:"historyDate,omitempty"`
}
