package entity

// Doctor represents a practitioner scoped to one unit and, optionally,
// one specialty. The permission flags gate patient and visit mutation
// in the collaborating UI; the core carries them as plain data.
type Doctor struct {
	ID              string `json:"id"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	UnitID          string `json:"unitId" validate:"required"`
	SpecialtyID     string `json:"specialtyId,omitempty"`
	Phone           string `json:"phone,omitempty"`
	LicenseNumber   string `json:"licenseNumber,omitempty"`
	CanEditPatients bool   `json:"canEditPatients"`
	CanManageVisits bool   `json:"canManageVisits"`
}
