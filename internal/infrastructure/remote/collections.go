package remote

import (
	"context"
	"net/http"

	"clinic-ops-client/internal/domain/entity"
)

// One set of CRUD calls per collection. Create and Update return the
// canonical record as the authority stored it; callers must apply that
// record, not the one they sent.

func (c *Client) ListUnits(ctx context.Context) ([]entity.Unit, error) {
	var out []entity.Unit
	err := c.do(ctx, http.MethodGet, "/units", nil, &out)
	return out, err
}

func (c *Client) CreateUnit(ctx context.Context, u entity.Unit) (entity.Unit, error) {
	var out entity.Unit
	err := c.do(ctx, http.MethodPost, "/units", u, &out)
	return out, err
}

func (c *Client) UpdateUnit(ctx context.Context, u entity.Unit) (entity.Unit, error) {
	var out entity.Unit
	err := c.do(ctx, http.MethodPut, "/units/"+u.ID, u, &out)
	return out, err
}

func (c *Client) DeleteUnit(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/units/"+id, nil, nil)
}

func (c *Client) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	var out []entity.Doctor
	err := c.do(ctx, http.MethodGet, "/doctors", nil, &out)
	return out, err
}

func (c *Client) CreateDoctor(ctx context.Context, d entity.Doctor) (entity.Doctor, error) {
	var out entity.Doctor
	err := c.do(ctx, http.MethodPost, "/doctors", d, &out)
	return out, err
}

func (c *Client) UpdateDoctor(ctx context.Context, d entity.Doctor) (entity.Doctor, error) {
	var out entity.Doctor
	err := c.do(ctx, http.MethodPut, "/doctors/"+d.ID, d, &out)
	return out, err
}

func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/doctors/"+id, nil, nil)
}

func (c *Client) ListPatients(ctx context.Context) ([]entity.Patient, error) {
	var out []entity.Patient
	err := c.do(ctx, http.MethodGet, "/patients", nil, &out)
	return out, err
}

func (c *Client) CreatePatient(ctx context.Context, p entity.Patient) (entity.Patient, error) {
	var out entity.Patient
	err := c.do(ctx, http.MethodPost, "/patients", p, &out)
	return out, err
}

func (c *Client) UpdatePatient(ctx context.Context, p entity.Patient) (entity.Patient, error) {
	var out entity.Patient
	err := c.do(ctx, http.MethodPut, "/patients/"+p.ID, p, &out)
	return out, err
}

func (c *Client) DeletePatient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/patients/"+id, nil, nil)
}

func (c *Client) ListReceptionists(ctx context.Context) ([]entity.Receptionist, error) {
	var out []entity.Receptionist
	err := c.do(ctx, http.MethodGet, "/receptionists", nil, &out)
	return out, err
}

func (c *Client) CreateReceptionist(ctx context.Context, r entity.Receptionist) (entity.Receptionist, error) {
	var out entity.Receptionist
	err := c.do(ctx, http.MethodPost, "/receptionists", r, &out)
	return out, err
}

func (c *Client) UpdateReceptionist(ctx context.Context, r entity.Receptionist) (entity.Receptionist, error) {
	var out entity.Receptionist
	err := c.do(ctx, http.MethodPut, "/receptionists/"+r.ID, r, &out)
	return out, err
}

func (c *Client) DeleteReceptionist(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/receptionists/"+id, nil, nil)
}

func (c *Client) ListSpecialties(ctx context.Context) ([]entity.Specialty, error) {
	var out []entity.Specialty
	err := c.do(ctx, http.MethodGet, "/specialties", nil, &out)
	return out, err
}

func (c *Client) CreateSpecialty(ctx context.Context, s entity.Specialty) (entity.Specialty, error) {
	var out entity.Specialty
	err := c.do(ctx, http.MethodPost, "/specialties", s, &out)
	return out, err
}

func (c *Client) UpdateSpecialty(ctx context.Context, s entity.Specialty) (entity.Specialty, error) {
	var out entity.Specialty
	err := c.do(ctx, http.MethodPut, "/specialties/"+s.ID, s, &out)
	return out, err
}

func (c *Client) DeleteSpecialty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/specialties/"+id, nil, nil)
}

func (c *Client) ListTemplates(ctx context.Context) ([]entity.SpecialtyTemplate, error) {
	var out []entity.SpecialtyTemplate
	err := c.do(ctx, http.MethodGet, "/templates", nil, &out)
	return out, err
}

func (c *Client) CreateTemplate(ctx context.Context, t entity.SpecialtyTemplate) (entity.SpecialtyTemplate, error) {
	var out entity.SpecialtyTemplate
	err := c.do(ctx, http.MethodPost, "/templates", t, &out)
	return out, err
}

func (c *Client) UpdateTemplate(ctx context.Context, t entity.SpecialtyTemplate) (entity.SpecialtyTemplate, error) {
	var out entity.SpecialtyTemplate
	err := c.do(ctx, http.MethodPut, "/templates/"+t.ID, t, &out)
	return out, err
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/templates/"+id, nil, nil)
}

func (c *Client) ListVisits(ctx context.Context) ([]entity.VisitEntry, error) {
	var out []entity.VisitEntry
	err := c.do(ctx, http.MethodGet, "/visits", nil, &out)
	return out, err
}

func (c *Client) CreateVisit(ctx context.Context, v entity.VisitEntry) (entity.VisitEntry, error) {
	var out entity.VisitEntry
	err := c.do(ctx, http.MethodPost, "/visits", v, &out)
	return out, err
}

func (c *Client) UpdateVisit(ctx context.Context, v entity.VisitEntry) (entity.VisitEntry, error) {
	var out entity.VisitEntry
	err := c.do(ctx, http.MethodPut, "/visits/"+v.ID, v, &out)
	return out, err
}

func (c *Client) DeleteVisit(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/visits/"+id, nil, nil)
}

func (c *Client) ListAppointments(ctx context.Context) ([]entity.Appointment, error) {
	var out []entity.Appointment
	err := c.do(ctx, http.MethodGet, "/appointments", nil, &out)
	return out, err
}

func (c *Client) CreateAppointment(ctx context.Context, a entity.Appointment) (entity.Appointment, error) {
	var out entity.Appointment
	err := c.do(ctx, http.MethodPost, "/appointments", a, &out)
	return out, err
}

func (c *Client) UpdateAppointment(ctx context.Context, a entity.Appointment) (entity.Appointment, error) {
	var out entity.Appointment
	err := c.do(ctx, http.MethodPut, "/appointments/"+a.ID, a, &out)
	return out, err
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/appointments/"+id, nil, nil)
}
