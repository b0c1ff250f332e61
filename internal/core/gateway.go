package core

import (
	"context"

	"github.com/inovacc/frontdesk/internal/model"
)

// Gateway is the slice of the clinic service client the engine needs.
// *api.Client satisfies it; tests substitute a mock.
type Gateway interface {
	ListPatients(ctx context.Context) ([]model.Patient, error)
	CreatePatient(ctx context.Context, name string) (*model.Patient, error)
	UpdatePatientStatus(ctx context.Context, id int, status model.PatientStatus) (*model.Patient, error)
	DeletePatient(ctx context.Context, id int) error

	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	CreateDoctor(ctx context.Context, name, specialization string, availability model.DoctorAvailability) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id int) error

	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, patientID, doctorID int, timeSlot string) (*model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int, status model.AppointmentStatus) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int) error
}
