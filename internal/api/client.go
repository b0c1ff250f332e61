// Package api is the only component that talks to the clinic service.
// Every call attaches the current session credential as a bearer
// token; the package does not itself enforce that a credential exists,
// that is the session gate's job before any call is made.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/inovacc/frontdesk/internal/model"
)

// TokenSource supplies the current session credential. The bolt
// session store satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

// Client is a client for the clinic service API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *slog.Logger
}

// ClientOptions configures the clinic service client.
type ClientOptions struct {
	Logger *slog.Logger

	// HTTPClient overrides the default 30s-timeout client, for tests.
	HTTPClient *http.Client
}

// NewClient creates a clinic service client against the given base
// origin.
func NewClient(baseURL string, tokens TokenSource, opts ClientOptions) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// do performs one HTTP exchange with the clinic service. Requests with
// a nil body are sent without one; responses are decoded into result
// when result is non-nil. authenticated controls whether the bearer
// header is attached (everything except login).
func (c *Client) do(ctx context.Context, method, path string, body, result any, authenticated bool) error {
	op := method + " " + path
	url := c.baseURL + path
	requestID := uuid.NewString()

	c.logger.Debug("clinic service request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	if authenticated {
		// The call is attempted even without a credential; the
		// service answers 401 and the caller's error path handles it.
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)

		return &RemoteError{Op: op, Status: resp.StatusCode, Body: respBody}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Login exchanges operator credentials for a session token. This is
// the only unauthenticated call and the only one whose failure is
// surfaced to the operator.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	reqBody := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var result struct {
		AccessToken string `json:"access_token"`
	}

	if err := c.do(ctx, http.MethodPost, "/auth/login", reqBody, &result, false); err != nil {
		return "", err
	}

	if result.AccessToken == "" {
		// 2xx without a token: treated the same as a rejected login.
		return "", &RemoteError{Op: "POST /auth/login", Status: http.StatusOK, Body: nil}
	}

	return result.AccessToken, nil
}

// ListPatients returns the queue in service order.
func (c *Client) ListPatients(ctx context.Context) ([]model.Patient, error) {
	var result []model.Patient
	if err := c.do(ctx, http.MethodGet, "/patients", nil, &result, true); err != nil {
		return nil, err
	}

	return result, nil
}

// CreatePatient adds a patient to the queue. The service assigns the
// ID and the initial status.
func (c *Client) CreatePatient(ctx context.Context, name string) (*model.Patient, error) {
	reqBody := struct {
		Name string `json:"name"`
	}{Name: name}

	var result model.Patient
	if err := c.do(ctx, http.MethodPost, "/patients", reqBody, &result, true); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdatePatientStatus moves a patient through the queue.
func (c *Client) UpdatePatientStatus(ctx context.Context, id int, status model.PatientStatus) (*model.Patient, error) {
	reqBody := struct {
		Status model.PatientStatus `json:"status"`
	}{Status: status}

	var result model.Patient
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/patients/%d", id), reqBody, &result, true); err != nil {
		return nil, err
	}

	return &result, nil
}

// DeletePatient removes a patient from the queue.
func (c *Client) DeletePatient(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/patients/%d", id), nil, nil, true)
}

// ListDoctors returns all doctors in service order.
func (c *Client) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	var result []model.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors", nil, &result, true); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateDoctor registers a doctor.
func (c *Client) CreateDoctor(ctx context.Context, name, specialization string, availability model.DoctorAvailability) (*model.Doctor, error) {
	reqBody := struct {
		Name           string                   `json:"name"`
		Specialization string                   `json:"specialization"`
		Availability   model.DoctorAvailability `json:"availability"`
	}{Name: name, Specialization: specialization, Availability: availability}

	var result model.Doctor
	if err := c.do(ctx, http.MethodPost, "/doctors", reqBody, &result, true); err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteDoctor removes a doctor.
func (c *Client) DeleteDoctor(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/doctors/%d", id), nil, nil, true)
}

// ListAppointments returns all appointments in service order,
// including the embedded patient and doctor snapshots.
func (c *Client) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	var result []model.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &result, true); err != nil {
		return nil, err
	}

	return result, nil
}

// ref is the id-only reference shape the service expects when booking.
type ref struct {
	ID int `json:"id"`
}

// CreateAppointment books a patient with a doctor. The time string is
// passed through to the service untouched.
func (c *Client) CreateAppointment(ctx context.Context, patientID, doctorID int, timeSlot string) (*model.Appointment, error) {
	reqBody := struct {
		Patient ref    `json:"patient"`
		Doctor  ref    `json:"doctor"`
		Time    string `json:"time"`
	}{Patient: ref{ID: patientID}, Doctor: ref{ID: doctorID}, Time: timeSlot}

	var result model.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", reqBody, &result, true); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateAppointmentStatus moves a booking through its lifecycle.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int, status model.AppointmentStatus) (*model.Appointment, error) {
	reqBody := struct {
		Status model.AppointmentStatus `json:"status"`
	}{Status: status}

	var result model.Appointment
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d", id), reqBody, &result, true); err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteAppointment removes a booking.
func (c *Client) DeleteAppointment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), nil, nil, true)
}
