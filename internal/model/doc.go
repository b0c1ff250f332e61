// Package model defines the data structures shared across frontdesk.
//
// These are the client-side images of the records held by the clinic
// service: patients in the queue, doctors, and the appointments that
// link the two. The service owns identity (IDs are assigned remotely)
// and referential consistency; the structs here only carry what the
// service returned on the last read.
//
// # Appointment snapshots
//
// An [Appointment] embeds the patient and doctor records as they were
// at read time, not as live references. Both fields are pointers and
// may be nil when the service omits them; rendering code must go
// through [Appointment.PatientName] and [Appointment.DoctorName]
// rather than dereferencing directly.
package model
