package entity

// Role identifies what a logged-in user may see and do
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "receptionist"
	RoleDoctor       Role = "doctor"
)

// Valid reports whether the role is one the client understands
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReceptionist, RoleDoctor:
		return true
	}
	return false
}

// Session is the authenticated client state handed back by the remote
// authority on login. DoctorID, UnitID and ReceptionistID are populated
// depending on the role.
type Session struct {
	Role               Role   `json:"role"`
	DoctorID           string `json:"doctorId,omitempty"`
	UnitID             string `json:"unitId,omitempty"`
	ReceptionistID     string `json:"receptionistId,omitempty"`
	Token              string `json:"token"`
	MustChangePassword bool   `json:"mustChangePassword,omitempty"`
}

// IsAuthenticated reports whether the session carries a usable identity
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.Role.Valid()
}
