package core

import (
	"context"

	"github.com/inovacc/frontdesk/internal/model"
)

// mockGateway is a mock implementation of Gateway for testing.
type mockGateway struct {
	// Collection data served by the list calls
	Patients     []model.Patient
	Doctors      []model.Doctor
	Appointments []model.Appointment

	// Error injection
	ListPatientsErr     error
	ListDoctorsErr      error
	ListAppointmentsErr error
	CreatePatientErr    error
	CreateDoctorErr     error
	CreateAppointErr    error
	UpdatePatientErr    error
	UpdateAppointErr    error
	DeletePatientErr    error
	DeleteDoctorErr     error
	DeleteAppointErr    error

	// Call tracking, in issue order
	Calls []string

	// Captured arguments
	CreatedPatientName   string
	CreatedDoctorName    string
	CreatedSpecialty     string
	CreatedAvailability  model.DoctorAvailability
	BookedPatientID      int
	BookedDoctorID       int
	BookedTime           string
	UpdatedPatientID     int
	UpdatedPatientStatus model.PatientStatus
	UpdatedAppointID     int
	UpdatedAppointStatus model.AppointmentStatus
	DeletedPatientID     int
	DeletedDoctorID      int
	DeletedAppointID     int
}

func (m *mockGateway) ListPatients(context.Context) ([]model.Patient, error) {
	m.Calls = append(m.Calls, "ListPatients")
	if m.ListPatientsErr != nil {
		return nil, m.ListPatientsErr
	}

	return m.Patients, nil
}

func (m *mockGateway) ListDoctors(context.Context) ([]model.Doctor, error) {
	m.Calls = append(m.Calls, "ListDoctors")
	if m.ListDoctorsErr != nil {
		return nil, m.ListDoctorsErr
	}

	return m.Doctors, nil
}

func (m *mockGateway) ListAppointments(context.Context) ([]model.Appointment, error) {
	m.Calls = append(m.Calls, "ListAppointments")
	if m.ListAppointmentsErr != nil {
		return nil, m.ListAppointmentsErr
	}

	return m.Appointments, nil
}

func (m *mockGateway) CreatePatient(_ context.Context, name string) (*model.Patient, error) {
	m.Calls = append(m.Calls, "CreatePatient")

	m.CreatedPatientName = name
	if m.CreatePatientErr != nil {
		return nil, m.CreatePatientErr
	}

	return &model.Patient{ID: 1, Name: name, Status: model.PatientWaiting}, nil
}

func (m *mockGateway) CreateDoctor(_ context.Context, name, specialization string, availability model.DoctorAvailability) (*model.Doctor, error) {
	m.Calls = append(m.Calls, "CreateDoctor")

	m.CreatedDoctorName = name
	m.CreatedSpecialty = specialization
	m.CreatedAvailability = availability
	if m.CreateDoctorErr != nil {
		return nil, m.CreateDoctorErr
	}

	return &model.Doctor{ID: 1, Name: name, Specialization: specialization, Availability: availability}, nil
}

func (m *mockGateway) CreateAppointment(_ context.Context, patientID, doctorID int, timeSlot string) (*model.Appointment, error) {
	m.Calls = append(m.Calls, "CreateAppointment")

	m.BookedPatientID = patientID
	m.BookedDoctorID = doctorID
	m.BookedTime = timeSlot
	if m.CreateAppointErr != nil {
		return nil, m.CreateAppointErr
	}

	return &model.Appointment{ID: 1, Time: timeSlot, Status: model.AppointmentBooked}, nil
}

func (m *mockGateway) UpdatePatientStatus(_ context.Context, id int, status model.PatientStatus) (*model.Patient, error) {
	m.Calls = append(m.Calls, "UpdatePatientStatus")

	m.UpdatedPatientID = id
	m.UpdatedPatientStatus = status
	if m.UpdatePatientErr != nil {
		return nil, m.UpdatePatientErr
	}

	return &model.Patient{ID: id, Status: status}, nil
}

func (m *mockGateway) UpdateAppointmentStatus(_ context.Context, id int, status model.AppointmentStatus) (*model.Appointment, error) {
	m.Calls = append(m.Calls, "UpdateAppointmentStatus")

	m.UpdatedAppointID = id
	m.UpdatedAppointStatus = status
	if m.UpdateAppointErr != nil {
		return nil, m.UpdateAppointErr
	}

	return &model.Appointment{ID: id, Status: status}, nil
}

func (m *mockGateway) DeletePatient(_ context.Context, id int) error {
	m.Calls = append(m.Calls, "DeletePatient")

	m.DeletedPatientID = id

	return m.DeletePatientErr
}

func (m *mockGateway) DeleteDoctor(_ context.Context, id int) error {
	m.Calls = append(m.Calls, "DeleteDoctor")

	m.DeletedDoctorID = id

	return m.DeleteDoctorErr
}

func (m *mockGateway) DeleteAppointment(_ context.Context, id int) error {
	m.Calls = append(m.Calls, "DeleteAppointment")

	m.DeletedAppointID = id

	return m.DeleteAppointErr
}
