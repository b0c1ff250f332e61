package model

import "testing"

func TestParsePatientStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PatientStatus
		wantErr bool
	}{
		{name: "waiting", input: "Waiting", want: PatientWaiting},
		{name: "with doctor", input: "With Doctor", want: PatientWithDoctor},
		{name: "completed", input: "Completed", want: PatientCompleted},
		{name: "unknown", input: "Sleeping", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong case", input: "waiting", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePatientStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePatientStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParsePatientStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPatientStatusNext(t *testing.T) {
	tests := []struct {
		input PatientStatus
		want  PatientStatus
	}{
		{PatientWaiting, PatientWithDoctor},
		{PatientWithDoctor, PatientCompleted},
		{PatientCompleted, PatientWaiting},
		{PatientStatus("garbage"), PatientWaiting},
	}

	for _, tt := range tests {
		if got := tt.input.Next(); got != tt.want {
			t.Errorf("%q.Next() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDoctorAvailability(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DoctorAvailability
		wantErr bool
	}{
		{name: "available", input: "Available", want: DoctorAvailable},
		{name: "busy", input: "Busy", want: DoctorBusy},
		{name: "off duty", input: "Off Duty", want: DoctorOffDuty},
		{name: "unknown", input: "Retired", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDoctorAvailability(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDoctorAvailability(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseDoctorAvailability(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAppointmentStatusNext(t *testing.T) {
	tests := []struct {
		input AppointmentStatus
		want  AppointmentStatus
	}{
		{AppointmentBooked, AppointmentCompleted},
		{AppointmentCompleted, AppointmentCanceled},
		{AppointmentCanceled, AppointmentBooked},
	}

	for _, tt := range tests {
		if got := tt.input.Next(); got != tt.want {
			t.Errorf("%q.Next() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAppointmentSnapshotNames(t *testing.T) {
	withSnapshots := Appointment{
		Patient: &Patient{Name: "Ana"},
		Doctor:  &Doctor{Name: "Dr. Osei"},
	}

	if got := withSnapshots.PatientName(); got != "Ana" {
		t.Errorf("PatientName() = %q, want %q", got, "Ana")
	}

	if got := withSnapshots.DoctorName(); got != "Dr. Osei" {
		t.Errorf("DoctorName() = %q, want %q", got, "Dr. Osei")
	}

	// The service may have dropped the referenced records since the
	// snapshot was taken; rendering must not blow up.
	var orphaned Appointment

	if got := orphaned.PatientName(); got != "(unknown)" {
		t.Errorf("PatientName() on missing snapshot = %q, want %q", got, "(unknown)")
	}

	if got := orphaned.DoctorName(); got != "(unknown)" {
		t.Errorf("DoctorName() on missing snapshot = %q, want %q", got, "(unknown)")
	}
}
