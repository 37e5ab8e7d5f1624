package store

import "clinic-ops-client/internal/domain/entity"

// Cascade rules. Every predicate is evaluated against the collections as
// they stood before the delete, then each affected collection is filtered
// in one pass, so the final state does not depend on removal order.

// RemoveUnit deletes the unit, its doctors and receptionists, and every
// patient, appointment and visit owned by one of the removed doctors.
func (s *Store) RemoveUnit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected := make(map[string]bool)
	for _, d := range s.data.Doctors {
		if d.UnitID == id {
			affected[d.ID] = true
		}
	}

	s.data.Units = filter(s.data.Units, func(u entity.Unit) bool { return u.ID != id })
	s.data.Doctors = filter(s.data.Doctors, func(d entity.Doctor) bool { return d.UnitID != id })
	s.data.Receptionists = filter(s.data.Receptionists, func(r entity.Receptionist) bool { return r.UnitID != id })
	s.data.Patients = filter(s.data.Patients, func(p entity.Patient) bool { return !affected[p.DoctorID] })
	s.data.Appointments = filter(s.data.Appointments, func(a entity.Appointment) bool { return !affected[a.DoctorID] })
	s.data.Visits = filter(s.data.Visits, func(v entity.VisitEntry) bool { return !affected[v.DoctorID] })
}

// RemoveDoctor deletes the doctor and every patient, appointment and
// visit that references them.
func (s *Store) RemoveDoctor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Doctors = filter(s.data.Doctors, func(d entity.Doctor) bool { return d.ID != id })
	s.data.Patients = filter(s.data.Patients, func(p entity.Patient) bool { return p.DoctorID != id })
	s.data.Appointments = filter(s.data.Appointments, func(a entity.Appointment) bool { return a.DoctorID != id })
	s.data.Visits = filter(s.data.Visits, func(v entity.VisitEntry) bool { return v.DoctorID != id })
}

// RemovePatient deletes the patient and their appointments and visits
func (s *Store) RemovePatient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Patients = filter(s.data.Patients, func(p entity.Patient) bool { return p.ID != id })
	s.data.Appointments = filter(s.data.Appointments, func(a entity.Appointment) bool { return a.PatientID != id })
	s.data.Visits = filter(s.data.Visits, func(v entity.VisitEntry) bool { return v.PatientID != id })
}

// RemoveSpecialty deletes the specialty and its templates. Visit entries
// are left alone even when their templateId now dangles: history stays
// immutable.
func (s *Store) RemoveSpecialty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Specialties = filter(s.data.Specialties, func(sp entity.Specialty) bool { return sp.ID != id })
	s.data.Templates = filter(s.data.Templates, func(t entity.SpecialtyTemplate) bool { return t.SpecialtyID != id })
}

// RemoveTemplate deletes the template only; no cascade
func (s *Store) RemoveTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Templates = filter(s.data.Templates, func(t entity.SpecialtyTemplate) bool { return t.ID != id })
}

// RemoveReceptionist deletes the receptionist only; no cascade
func (s *Store) RemoveReceptionist(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Receptionists = filter(s.data.Receptionists, func(r entity.Receptionist) bool { return r.ID != id })
}

// RemoveAppointment deletes the appointment only; no cascade
func (s *Store) RemoveAppointment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Appointments = filter(s.data.Appointments, func(a entity.Appointment) bool { return a.ID != id })
}

// RemoveVisit deletes the visit entry only; no cascade
func (s *Store) RemoveVisit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Visits = filter(s.data.Visits, func(v entity.VisitEntry) bool { return v.ID != id })
}
