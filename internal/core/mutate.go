package core

import (
	"context"
	"log/slog"
	"strings"

	"github.com/inovacc/frontdesk/internal/model"
)

// Dispatcher funnels every write through the same two-phase protocol:
// validate locally, then one service call followed by one full
// refetch. A failed validation makes no call; a failed call changes
// nothing; a failed refetch after a successful call is logged and
// swallowed, returning a nil snapshot so the caller keeps rendering
// its previous data until the next refresh lands.
//
// The dispatcher never touches the State itself. Every operation
// returns the refetched Snapshot and the caller applies it on
// whichever goroutine owns the State.
//
// No operation carries a version or concurrency token. The service is
// last-writer-wins and the client has no conflict detection.
type Dispatcher struct {
	gateway Gateway
	syncer  *Syncer
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher issuing calls through gateway and
// refetching through syncer.
func NewDispatcher(gateway Gateway, syncer *Syncer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{gateway: gateway, syncer: syncer, logger: logger}
}

// settle runs the post-call half of the protocol: log and return the
// call's error if it failed, otherwise refetch. A refetch failure is
// logged by Fetch and swallowed here; the caller gets a nil snapshot
// and a nil error.
func (d *Dispatcher) settle(ctx context.Context, op string, err error) (*Snapshot, error) {
	if err != nil {
		d.logger.Error("mutation failed", slog.String("op", op), slog.Any("error", err))

		return nil, err
	}

	snapshot, err := d.syncer.Fetch(ctx)
	if err != nil {
		return nil, nil
	}

	return snapshot, nil
}

// AddPatient adds a patient to the queue. The service assigns ID and
// initial status.
func (d *Dispatcher) AddPatient(ctx context.Context, name string) (*Snapshot, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	_, err := d.gateway.CreatePatient(ctx, name)

	return d.settle(ctx, "add patient", err)
}

// AddDoctor registers a doctor.
func (d *Dispatcher) AddDoctor(ctx context.Context, name, specialization string, availability model.DoctorAvailability) (*Snapshot, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if strings.TrimSpace(specialization) == "" {
		return nil, &ValidationError{Field: "specialization", Reason: "must not be empty"}
	}

	if _, err := model.ParseDoctorAvailability(string(availability)); err != nil {
		return nil, &ValidationError{Field: "availability", Reason: err.Error()}
	}

	_, err := d.gateway.CreateDoctor(ctx, name, specialization, availability)

	return d.settle(ctx, "add doctor", err)
}

// BookAppointment books a patient with a doctor at the given time. The
// time string goes to the service untouched.
func (d *Dispatcher) BookAppointment(ctx context.Context, patientID, doctorID int, timeSlot string) (*Snapshot, error) {
	if patientID <= 0 {
		return nil, &ValidationError{Field: "patient", Reason: "no patient selected"}
	}

	if doctorID <= 0 {
		return nil, &ValidationError{Field: "doctor", Reason: "no doctor selected"}
	}

	if strings.TrimSpace(timeSlot) == "" {
		return nil, &ValidationError{Field: "time", Reason: "must not be empty"}
	}

	_, err := d.gateway.CreateAppointment(ctx, patientID, doctorID, timeSlot)

	return d.settle(ctx, "book appointment", err)
}

// UpdatePatientStatus moves a patient through the queue.
func (d *Dispatcher) UpdatePatientStatus(ctx context.Context, id int, status model.PatientStatus) (*Snapshot, error) {
	if _, err := model.ParsePatientStatus(string(status)); err != nil {
		return nil, &ValidationError{Field: "status", Reason: err.Error()}
	}

	_, err := d.gateway.UpdatePatientStatus(ctx, id, status)

	return d.settle(ctx, "update patient status", err)
}

// UpdateAppointmentStatus moves a booking through its lifecycle.
func (d *Dispatcher) UpdateAppointmentStatus(ctx context.Context, id int, status model.AppointmentStatus) (*Snapshot, error) {
	if _, err := model.ParseAppointmentStatus(string(status)); err != nil {
		return nil, &ValidationError{Field: "status", Reason: err.Error()}
	}

	_, err := d.gateway.UpdateAppointmentStatus(ctx, id, status)

	return d.settle(ctx, "update appointment status", err)
}

// DeletePatient removes a patient from the queue.
func (d *Dispatcher) DeletePatient(ctx context.Context, id int) (*Snapshot, error) {
	return d.settle(ctx, "delete patient", d.gateway.DeletePatient(ctx, id))
}

// DeleteDoctor removes a doctor.
func (d *Dispatcher) DeleteDoctor(ctx context.Context, id int) (*Snapshot, error) {
	return d.settle(ctx, "delete doctor", d.gateway.DeleteDoctor(ctx, id))
}

// DeleteAppointment removes a booking.
func (d *Dispatcher) DeleteAppointment(ctx context.Context, id int) (*Snapshot, error) {
	return d.settle(ctx, "delete appointment", d.gateway.DeleteAppointment(ctx, id))
}
