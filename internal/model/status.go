package model

import "fmt"

// PatientStatus tracks where a patient is in the visit flow.
type PatientStatus string

const (
	PatientWaiting    PatientStatus = "Waiting"
	PatientWithDoctor PatientStatus = "With Doctor"
	PatientCompleted  PatientStatus = "Completed"
)

// Next returns the status a front desk operator cycles to: Waiting ->
// With Doctor -> Completed -> Waiting.
func (s PatientStatus) Next() PatientStatus {
	switch s {
	case PatientWaiting:
		return PatientWithDoctor
	case PatientWithDoctor:
		return PatientCompleted
	default:
		return PatientWaiting
	}
}

// ParsePatientStatus validates an operator-supplied status string.
func ParsePatientStatus(s string) (PatientStatus, error) {
	switch PatientStatus(s) {
	case PatientWaiting, PatientWithDoctor, PatientCompleted:
		return PatientStatus(s), nil
	}

	return "", fmt.Errorf("unknown patient status %q (want %q, %q or %q)",
		s, PatientWaiting, PatientWithDoctor, PatientCompleted)
}

// DoctorAvailability is a doctor's current duty state.
type DoctorAvailability string

const (
	DoctorAvailable DoctorAvailability = "Available"
	DoctorBusy      DoctorAvailability = "Busy"
	DoctorOffDuty   DoctorAvailability = "Off Duty"
)

// Availabilities lists the valid duty states in display order.
func Availabilities() []DoctorAvailability {
	return []DoctorAvailability{DoctorAvailable, DoctorBusy, DoctorOffDuty}
}

// ParseDoctorAvailability validates an operator-supplied availability
// string.
func ParseDoctorAvailability(s string) (DoctorAvailability, error) {
	switch DoctorAvailability(s) {
	case DoctorAvailable, DoctorBusy, DoctorOffDuty:
		return DoctorAvailability(s), nil
	}

	return "", fmt.Errorf("unknown availability %q (want %q, %q or %q)",
		s, DoctorAvailable, DoctorBusy, DoctorOffDuty)
}

// AppointmentStatus tracks a booking through its lifecycle.
type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "Booked"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCanceled  AppointmentStatus = "Canceled"
)

// Next returns the status an operator cycles to: Booked -> Completed ->
// Canceled -> Booked.
func (s AppointmentStatus) Next() AppointmentStatus {
	switch s {
	case AppointmentBooked:
		return AppointmentCompleted
	case AppointmentCompleted:
		return AppointmentCanceled
	default:
		return AppointmentBooked
	}
}

// ParseAppointmentStatus validates an operator-supplied status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case AppointmentBooked, AppointmentCompleted, AppointmentCanceled:
		return AppointmentStatus(s), nil
	}

	return "", fmt.Errorf("unknown appointment status %q (want %q, %q or %q)",
		s, AppointmentBooked, AppointmentCompleted, AppointmentCanceled)
}
