package entity

// Receptionist represents front-desk staff scoped to one unit
type Receptionist struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	UnitID  string `json:"unitId" validate:"required"`
}
