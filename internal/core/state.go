package core

import "github.com/inovacc/frontdesk/internal/model"

// State holds the console's three collections, each in the order the
// service returned them, plus a readiness flag. ReplaceAll is the only
// mutator: the collections change together or not at all, so a reader
// always sees one consistent snapshot.
//
// State is not synchronized. Readers and the mutator must share a
// goroutine; code that fetches on another goroutine carries a Snapshot
// back and applies it where the State lives.
type State struct {
	patients     []model.Patient
	doctors      []model.Doctor
	appointments []model.Appointment
	ready        bool
}

// NewState returns an empty, not-ready state.
func NewState() *State {
	return &State{}
}

// ReplaceAll swaps in a full snapshot of all three collections and
// latches the ready flag.
func (s *State) ReplaceAll(patients []model.Patient, doctors []model.Doctor, appointments []model.Appointment) {
	s.patients = patients
	s.doctors = doctors
	s.appointments = appointments
	s.ready = true
}

// Apply installs a fetched snapshot. A nil snapshot is a no-op, so a
// failed fetch can be applied unconditionally without blanking the
// previous data.
func (s *State) Apply(snapshot *Snapshot) {
	if snapshot == nil {
		return
	}

	s.ReplaceAll(snapshot.Patients, snapshot.Doctors, snapshot.Appointments)
}

// Ready reports whether at least one full snapshot has landed. It
// never goes back to false: a later refresh failure leaves stale data
// visible rather than blanking the console.
func (s *State) Ready() bool {
	return s.ready
}

// Patients returns the queue as of the last snapshot.
func (s *State) Patients() []model.Patient {
	return s.patients
}

// Doctors returns the doctors as of the last snapshot.
func (s *State) Doctors() []model.Doctor {
	return s.doctors
}

// Appointments returns the appointments as of the last snapshot.
func (s *State) Appointments() []model.Appointment {
	return s.appointments
}

// WaitingCount counts patients still in the waiting state, for the
// console header.
func (s *State) WaitingCount() int {
	n := 0

	for _, p := range s.patients {
		if p.Status == model.PatientWaiting {
			n++
		}
	}

	return n
}
