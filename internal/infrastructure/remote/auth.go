package remote

import (
	"context"
	"net/http"

	"clinic-ops-client/internal/domain/entity"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is what /auth/login hands back. DoctorID, UnitID and
// ReceptionistID are populated depending on the role.
type LoginResponse struct {
	Token              string      `json:"token"`
	Role               entity.Role `json:"role"`
	DoctorID           string      `json:"doctorId,omitempty"`
	UnitID             string      `json:"unitId,omitempty"`
	ReceptionistID     string      `json:"receptionistId,omitempty"`
	MustChangePassword bool        `json:"mustChangePassword,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// Login authenticates against the authority. It does not install the
// returned token; session handling is the auth usecase's job.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", req, &out)
	return out, err
}

// ChangePassword rotates the credential for the logged-in user
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/change-password", req, nil)
}
