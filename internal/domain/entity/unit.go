package entity

// UnitKind distinguishes a multi-doctor clinic from an individual practice
type UnitKind string

const (
	UnitKindClinic     UnitKind = "clinic"
	UnitKindIndividual UnitKind = "individual"
)

// Unit represents a clinic or individual practice location.
// Units sit at the top of the ownership hierarchy: doctors and
// receptionists belong to a unit, and everything a doctor owns
// goes away with the unit.
type Unit struct {
	ID        string   `json:"id"`
	Name      string   `json:"name" validate:"required"`
	Kind      UnitKind `json:"type" validate:"required,oneof=clinic individual"`
	Address   string   `json:"address,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	AdminName string   `json:"adminName,omitempty"`
}

// IsClinic reports whether the unit hosts multiple doctors
func (u *Unit) IsClinic() bool {
	return u.Kind == UnitKindClinic
}
