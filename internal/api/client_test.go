package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inovacc/frontdesk/internal/model"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

// recordedRequest captures what the test server saw for one exchange.
type recordedRequest struct {
	method string
	path   string
	auth   string
	body   string
}

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) (*Client, *[]recordedRequest) {
	t.Helper()

	var recorded []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			body:   string(body),
		})
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, staticTokens{token: token}, ClientOptions{})
	require.NoError(t, err)

	return client, &recorded
}

func respondJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("", staticTokens{}, ClientOptions{})
	require.Error(t, err)
}

func TestListPatientsSendsBearer(t *testing.T) {
	client, recorded := newTestClient(t, "tok-123", respondJSON(`[{"id":1,"name":"Ana","status":"Waiting"}]`))

	patients, err := client.ListPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	require.Equal(t, "Ana", patients[0].Name)
	require.Equal(t, model.PatientWaiting, patients[0].Status)

	require.Len(t, *recorded, 1)
	require.Equal(t, http.MethodGet, (*recorded)[0].method)
	require.Equal(t, "/patients", (*recorded)[0].path)
	require.Equal(t, "Bearer tok-123", (*recorded)[0].auth)
}

func TestCallWithoutTokenStillAttempted(t *testing.T) {
	// The gateway does not enforce authorization; that is the session
	// gate's job. Without a credential the call goes out bare.
	client, recorded := newTestClient(t, "", respondJSON(`[]`))

	_, err := client.ListDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, *recorded, 1)
	require.Empty(t, (*recorded)[0].auth)
}

func TestCreatePatientBody(t *testing.T) {
	client, recorded := newTestClient(t, "tok", respondJSON(`{"id":9,"name":"Ana","status":"Waiting"}`))

	patient, err := client.CreatePatient(context.Background(), "Ana")
	require.NoError(t, err)
	require.Equal(t, 9, patient.ID)

	require.Equal(t, http.MethodPost, (*recorded)[0].method)
	require.Equal(t, "/patients", (*recorded)[0].path)
	require.JSONEq(t, `{"name":"Ana"}`, (*recorded)[0].body)
}

func TestUpdatePatientStatusPath(t *testing.T) {
	client, recorded := newTestClient(t, "tok", respondJSON(`{"id":4,"name":"Ana","status":"With Doctor"}`))

	_, err := client.UpdatePatientStatus(context.Background(), 4, model.PatientWithDoctor)
	require.NoError(t, err)

	require.Equal(t, http.MethodPut, (*recorded)[0].method)
	require.Equal(t, "/patients/4", (*recorded)[0].path)
	require.JSONEq(t, `{"status":"With Doctor"}`, (*recorded)[0].body)
}

func TestDeletePatientPath(t *testing.T) {
	client, recorded := newTestClient(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeletePatient(context.Background(), 12))
	require.Equal(t, http.MethodDelete, (*recorded)[0].method)
	require.Equal(t, "/patients/12", (*recorded)[0].path)
}

func TestCreateDoctorBody(t *testing.T) {
	client, recorded := newTestClient(t, "tok",
		respondJSON(`{"id":2,"name":"Dr. Osei","specialization":"Cardiology","availability":"Available"}`))

	doctor, err := client.CreateDoctor(context.Background(), "Dr. Osei", "Cardiology", model.DoctorAvailable)
	require.NoError(t, err)
	require.Equal(t, model.DoctorAvailable, doctor.Availability)

	require.Equal(t, "/doctors", (*recorded)[0].path)
	require.JSONEq(t, `{"name":"Dr. Osei","specialization":"Cardiology","availability":"Available"}`, (*recorded)[0].body)
}

func TestCreateAppointmentBody(t *testing.T) {
	client, recorded := newTestClient(t, "tok",
		respondJSON(`{"id":5,"time":"2024-01-01T10:00","status":"Booked","patient":{"id":3,"name":"Ana","status":"Waiting"},"doctor":{"id":7,"name":"Dr. Osei","specialization":"Cardiology","availability":"Available"}}`))

	appointment, err := client.CreateAppointment(context.Background(), 3, 7, "2024-01-01T10:00")
	require.NoError(t, err)
	require.Equal(t, "Ana", appointment.PatientName())
	require.Equal(t, "Dr. Osei", appointment.DoctorName())

	require.Equal(t, http.MethodPost, (*recorded)[0].method)
	require.Equal(t, "/appointments", (*recorded)[0].path)
	require.JSONEq(t, `{"patient":{"id":3},"doctor":{"id":7},"time":"2024-01-01T10:00"}`, (*recorded)[0].body)
}

func TestListAppointmentsWithMissingSnapshots(t *testing.T) {
	client, _ := newTestClient(t, "tok",
		respondJSON(`[{"id":5,"time":"2024-01-01T10:00","status":"Booked","patient":null,"doctor":null}]`))

	appointments, err := client.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	require.Equal(t, "(unknown)", appointments[0].PatientName())
	require.Equal(t, "(unknown)", appointments[0].DoctorName())
}

func TestRemoteErrorOnNon2xx(t *testing.T) {
	client, _ := newTestClient(t, "stale-token", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
	})

	_, err := client.ListPatients(context.Background())
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, http.StatusUnauthorized, remote.Status)
	require.Equal(t, "Unauthorized", remote.Message())
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing listening anymore

	client, err := NewClient(server.URL, staticTokens{}, ClientOptions{})
	require.NoError(t, err)

	_, err = client.ListPatients(context.Background())
	require.Error(t, err)

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
}

func TestLoginSuccess(t *testing.T) {
	client, recorded := newTestClient(t, "", respondJSON(`{"access_token":"fresh-token"}`))

	token, err := client.Login(context.Background(), "desk", "secret")
	require.NoError(t, err)
	require.Equal(t, "fresh-token", token)

	require.Equal(t, http.MethodPost, (*recorded)[0].method)
	require.Equal(t, "/auth/login", (*recorded)[0].path)
	require.JSONEq(t, `{"username":"desk","password":"secret"}`, (*recorded)[0].body)
	// Login is the one unauthenticated call.
	require.Empty(t, (*recorded)[0].auth)
}

func TestLoginRejected(t *testing.T) {
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "desk", "wrong")
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", LoginFailureMessage(err))
}

func TestLoginRejectedWithoutMessage(t *testing.T) {
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	})

	_, err := client.Login(context.Background(), "desk", "pw")
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", LoginFailureMessage(err))
}

func TestLoginSuccessWithoutToken(t *testing.T) {
	client, _ := newTestClient(t, "", respondJSON(`{}`))

	_, err := client.Login(context.Background(), "desk", "pw")
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
}

func TestLoginFailureMessageOnTransportError(t *testing.T) {
	err := &TransportError{Op: "POST /auth/login", Err: errors.New("connection refused")}
	require.Equal(t, "An error occurred. Please try again.", LoginFailureMessage(err))
}
