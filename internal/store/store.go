// Package store holds the eight domain collections and the scheduling
// constraints singleton. It is the sole owner of that state: it performs
// no I/O and is only mutated by the synchronizer usecases after the
// remote authority has confirmed a write.
package store

import (
	"sync"

	"clinic-ops-client/internal/domain/entity"
)

// Collections bundles one consistent copy of every domain collection.
// Refresh swaps the whole bundle at once so a partially failed fetch can
// never leave the store mixing old and new data.
type Collections struct {
	Units         []entity.Unit
	Doctors       []entity.Doctor
	Patients      []entity.Patient
	Receptionists []entity.Receptionist
	Specialties   []entity.Specialty
	Templates     []entity.SpecialtyTemplate
	Visits        []entity.VisitEntry
	Appointments  []entity.Appointment
}

// Store is the in-memory entity store. The logical execution model has a
// single mutator path, but refresh fans out across goroutines and tests
// construct isolated instances, so access is guarded by a RWMutex.
type Store struct {
	mu          sync.RWMutex
	data        Collections
	constraints entity.Constraints
}

// New creates an empty store seeded with the given constraints
func New(constraints entity.Constraints) *Store {
	return &Store{constraints: constraints}
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := in[:0:0]
	for _, item := range in {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func replaceByID[T any](in []T, id func(T) string, next T, nextID string) bool {
	for i, item := range in {
		if id(item) == nextID {
			in[i] = next
			return true
		}
	}
	return false
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// ReplaceAll swaps every collection in one step
func (s *Store) ReplaceAll(c Collections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = c
}

// Snapshot returns a copy of all eight collections
func (s *Store) Snapshot() Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Collections{
		Units:         copySlice(s.data.Units),
		Doctors:       copySlice(s.data.Doctors),
		Patients:      copySlice(s.data.Patients),
		Receptionists: copySlice(s.data.Receptionists),
		Specialties:   copySlice(s.data.Specialties),
		Templates:     copySlice(s.data.Templates),
		Visits:        copySlice(s.data.Visits),
		Appointments:  copySlice(s.data.Appointments),
	}
}

func (s *Store) Units() []entity.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.data.Units)
}

func (s *Store) Doctors() []entity.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.data.Doctors)
}

func (s *Store) Patients() []entity.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.data.Patients)
}

func (s *Store) Receptionists() []entity.Receptionist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.data.Receptionists)
}

func (s *Store) Specialties() []entity.Specialty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.data.Specialties)
}

func (s *Store) Templates() []entity.SpecialtyTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.data.Templates)
}

func (s *Store) Visits() []entity.VisitEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.data.Visits)
}

func (s *Store) Appointments() []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.data.Appointments)
}

func (s *Store) UnitByID(id string) (entity.Unit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Units {
		if u.ID == id {
			return u, true
		}
	}
	return entity.Unit{}, false
}

func (s *Store) DoctorByID(id string) (entity.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.data.Doctors {
		if d.ID == id {
			return d, true
		}
	}
	return entity.Doctor{}, false
}

func (s *Store) PatientByID(id string) (entity.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Patients {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Patient{}, false
}

func (s *Store) ReceptionistByID(id string) (entity.Receptionist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data.Receptionists {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Receptionist{}, false
}

func (s *Store) SpecialtyByID(id string) (entity.Specialty, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.data.Specialties {
		if sp.ID == id {
			return sp, true
		}
	}
	return entity.Specialty{}, false
}

func (s *Store) TemplateByID(id string) (entity.SpecialtyTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.data.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return entity.SpecialtyTemplate{}, false
}

func (s *Store) VisitByID(id string) (entity.VisitEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.data.Visits {
		if v.ID == id {
			return v, true
		}
	}
	return entity.VisitEntry{}, false
}

func (s *Store) AppointmentByID(id string) (entity.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.data.Appointments {
		if a.ID == id {
			return a, true
		}
	}
	return entity.Appointment{}, false
}

// AppointmentsForDoctor returns the doctor's bookings, excluding the
// appointment with excludeID (used when an update must not conflict with
// its own prior version). Pass "" to exclude nothing.
func (s *Store) AppointmentsForDoctor(doctorID, excludeID string) []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Appointment
	for _, a := range s.data.Appointments {
		if a.DoctorID == doctorID && a.ID != excludeID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) AddUnit(u entity.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Units = append(s.data.Units, u)
}

// ReplaceUnit swaps the record with the matching id and reports whether
// one was found.
func (s *Store) ReplaceUnit(u entity.Unit) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceByID(s.data.Units, func(x entity.Unit) string { return x.ID }, u, u.ID)
}

func (s *Store) AddDoctor(d entity.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Doctors = append(s.data.Doctors, d)
}

func (s *Store) ReplaceDoctor(d entity.Doctor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceByID(s.data.Doctors, func(x entity.Doctor) string { return x.ID }, d, d.ID)
}

func (s *Store) AddPatient(p entity.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Patients = append(s.data.Patients, p)
}

func (s *Store) ReplacePatient(p entity.Patient) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceByID(s.data.Patients, func(x entity.Patient) string { return x.ID }, p, p.ID)
}

func (s *Store) AddReceptionist(r entity.Receptionist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Receptionists = append(s.data.Receptionists, r)
}

func (s *Store) ReplaceReceptionist(r entity.Receptionist) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceByID(s.data.Receptionists, func(x entity.Receptionist) string { return x.ID }, r, r.ID)
}

func (s *Store) AddSpecialty(sp entity.Specialty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Specialties = append(s.data.Specialties, sp)
}

func (s *Store) ReplaceSpecialty(sp entity.Specialty) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceByID(s.data.Specialties, func(x entity.Specialty) string { return x.ID }, sp, sp.ID)
}

func (s *Store) AddTemplate(t entity.SpecialtyTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Templates = append(s.data.Templates, t)
}

func (s *Store) ReplaceTemplate(t entity.SpecialtyTemplate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceByID(s.data.Templates, func(x entity.SpecialtyTemplate) string { return x.ID }, t, t.ID)
}

func (s *Store) AddVisit(v entity.VisitEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Newest visit first, matching how the history is consumed.
	s.data.Visits = append([]entity.VisitEntry{v}, s.data.Visits...)
}

func (s *Store) ReplaceVisit(v entity.VisitEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceByID(s.data.Visits, func(x entity.VisitEntry) string { return x.ID }, v, v.ID)
}

func (s *Store) AddAppointment(a entity.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Appointments = append(s.data.Appointments, a)
}

func (s *Store) ReplaceAppointment(a entity.Appointment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceByID(s.data.Appointments, func(x entity.Appointment) string { return x.ID }, a, a.ID)
}
