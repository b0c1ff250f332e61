package model

// Patient is a person in the front desk queue.
type Patient struct {
	// ID is assigned by the clinic service on creation
	ID int `json:"id"`

	// Name is the patient's display name
	Name string `json:"name"`

	// Status tracks the patient through the queue
	Status PatientStatus `json:"status"`
}

// Doctor is a practitioner the front desk can book against.
type Doctor struct {
	// ID is assigned by the clinic service on creation
	ID int `json:"id"`

	// Name is the doctor's display name
	Name string `json:"name"`

	// Specialization is free text ("Cardiology", "General")
	Specialization string `json:"specialization"`

	// Availability is the doctor's current duty state
	Availability DoctorAvailability `json:"availability"`
}

// Appointment links a patient to a doctor at a point in time. The
// Patient and Doctor fields are snapshots taken by the service at read
// time; either may be nil if the referenced record has gone away.
type Appointment struct {
	ID      int               `json:"id"`
	Time    string            `json:"time"`
	Status  AppointmentStatus `json:"status"`
	Patient *Patient          `json:"patient"`
	Doctor  *Doctor           `json:"doctor"`
}

// PatientName returns the snapshot patient's name, or a placeholder
// when the snapshot is missing.
func (a Appointment) PatientName() string {
	if a.Patient == nil {
		return "(unknown)"
	}

	return a.Patient.Name
}

// DoctorName returns the snapshot doctor's name, or a placeholder when
// the snapshot is missing.
func (a Appointment) DoctorName() string {
	if a.Doctor == nil {
		return "(unknown)"
	}

	return a.Doctor.Name
}
