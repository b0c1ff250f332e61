package core

import (
	"context"
	"log/slog"

	"github.com/inovacc/frontdesk/internal/model"
)

// Snapshot is one consistent read of all three collections, taken by
// three sequential list calls. It is plain data: fetching one touches
// no shared state, so it can cross goroutines freely and be applied to
// a State wherever that State is confined.
type Snapshot struct {
	Patients     []model.Patient
	Doctors      []model.Doctor
	Appointments []model.Appointment
}

// Syncer re-converges the local State against the clinic service.
type Syncer struct {
	gateway Gateway
	state   *State
	logger  *slog.Logger
}

// NewSyncer creates a Syncer that refreshes state through gateway.
func NewSyncer(gateway Gateway, state *State, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Syncer{gateway: gateway, state: state, logger: logger}
}

// State returns the collection state this syncer maintains.
func (s *Syncer) State() *State {
	return s.state
}

// Fetch re-reads all three collections with three sequential list
// calls and returns them as one snapshot, without touching the State.
// If any read fails, no snapshot is returned: the failure is logged
// and the error returned for callers that want to report it. The
// three reads are sequential, not a server-side transaction;
// consistency between them is the service's problem.
func (s *Syncer) Fetch(ctx context.Context) (*Snapshot, error) {
	patients, err := s.gateway.ListPatients(ctx)
	if err != nil {
		s.logger.Error("refresh failed", slog.String("collection", "patients"), slog.Any("error", err))

		return nil, err
	}

	doctors, err := s.gateway.ListDoctors(ctx)
	if err != nil {
		s.logger.Error("refresh failed", slog.String("collection", "doctors"), slog.Any("error", err))

		return nil, err
	}

	appointments, err := s.gateway.ListAppointments(ctx)
	if err != nil {
		s.logger.Error("refresh failed", slog.String("collection", "appointments"), slog.Any("error", err))

		return nil, err
	}

	return &Snapshot{Patients: patients, Doctors: doctors, Appointments: appointments}, nil
}

// Refresh fetches a snapshot and applies it in one step, for callers
// that own the State on their current goroutine. On failure nothing is
// replaced: the state keeps the previous fully consistent snapshot (or
// stays not-ready on first load).
func (s *Syncer) Refresh(ctx context.Context) error {
	snapshot, err := s.Fetch(ctx)
	if err != nil {
		return err
	}

	s.state.Apply(snapshot)

	return nil
}
