// Package cli holds the interactive bubbletea screens.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/frontdesk/internal/core"
	"github.com/inovacc/frontdesk/internal/model"
)

var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedPane  = paneStyle.BorderForeground(lipgloss.Color("62"))
	selectedRow  = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

type pane int

const (
	paneQueue pane = iota
	paneDoctors
	paneAppointments
)

type formMode int

const (
	modeBrowse formMode = iota
	modeAddPatient
	modeAddDoctor
	modeBookAppointment
)

// refreshDoneMsg carries a standalone refresh's result back to the
// event loop. Failures were already logged by the engine; the snapshot
// is nil and the console keeps rendering its last data.
type refreshDoneMsg struct {
	snapshot *core.Snapshot
	err      error
}

// dispatchDoneMsg reports a mutation and its follow-up refetch as one
// settled unit. snapshot is nil when the mutation or the refetch
// failed.
type dispatchDoneMsg struct {
	op       string
	snapshot *core.Snapshot
	err      error
}

// ConsoleModel is the front desk console screen. Commands run on
// bubbletea's own goroutines, so they only talk to the gateway and
// return a snapshot in their message; Update applies it to the shared
// State on the event-loop goroutine, which is the only place the State
// is ever read or written.
type ConsoleModel struct {
	syncer     *core.Syncer
	dispatcher *core.Dispatcher
	gate       *core.Gate

	focus   pane
	cursors [3]int
	mode    formMode

	inputs       []textinput.Model
	inputIndex   int
	availability int

	// busy blocks further submits while a dispatch or refresh is in
	// flight, so at most one command is fetching at a time.
	busy      bool
	notice    string
	width     int
	height    int
	quitting  bool
	loggedOut bool
}

// NewConsole builds the console screen over an already-gated engine.
func NewConsole(syncer *core.Syncer, dispatcher *core.Dispatcher, gate *core.Gate) ConsoleModel {
	return ConsoleModel{
		syncer:     syncer,
		dispatcher: dispatcher,
		gate:       gate,
	}
}

// LoggedOut reports whether the operator left via logout rather than
// quit, so the command can redirect to the entry screen afterwards.
func (m ConsoleModel) LoggedOut() bool {
	return m.loggedOut
}

func (m ConsoleModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m ConsoleModel) refreshCmd() tea.Cmd {
	syncer := m.syncer

	return func() tea.Msg {
		snapshot, err := syncer.Fetch(context.Background())

		return refreshDoneMsg{snapshot: snapshot, err: err}
	}
}

// dispatchCmd wraps one dispatcher operation as a command. The
// operation runs off-loop and never touches the State; its snapshot
// rides back in the message.
func dispatchCmd(op string, call func(context.Context) (*core.Snapshot, error)) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := call(context.Background())

		return dispatchDoneMsg{op: op, snapshot: snapshot, err: err}
	}
}

func (m ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case refreshDoneMsg:
		m.busy = false
		m.syncer.State().Apply(msg.snapshot)
		m.clampCursors()

		return m, nil

	case dispatchDoneMsg:
		m.busy = false
		m.syncer.State().Apply(msg.snapshot)
		m.clampCursors()

		if msg.err != nil {
			// Validation and remote failures both leave the form's
			// pending input in place; only success clears it.
			return m, nil
		}

		m.notice = msg.op
		m.resetForm()
		m.mode = modeBrowse

		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateForm(msg)
		}

		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m ConsoleModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true

		return m, tea.Quit

	case "ctrl+l":
		_ = m.gate.Logout()
		m.quitting = true
		m.loggedOut = true

		return m, tea.Quit

	case "tab", "right":
		m.focus = (m.focus + 1) % 3

		return m, nil

	case "shift+tab", "left":
		m.focus = (m.focus + 2) % 3

		return m, nil

	case "up", "k":
		if m.cursors[m.focus] > 0 {
			m.cursors[m.focus]--
		}

		return m, nil

	case "down", "j":
		if m.cursors[m.focus] < m.paneLen(m.focus)-1 {
			m.cursors[m.focus]++
		}

		return m, nil

	case "r":
		if m.busy {
			return m, nil
		}

		m.busy = true
		m.notice = ""

		return m, m.refreshCmd()

	case "a":
		if m.busy {
			return m, nil
		}

		m.openForm()

		return m, nil

	case "s":
		return m.cycleStatus()

	case "x", "delete":
		return m.deleteSelected()
	}

	return m, nil
}

func (m *ConsoleModel) openForm() {
	m.notice = ""
	m.inputIndex = 0
	m.availability = 0

	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit

		return in
	}

	switch m.focus {
	case paneQueue:
		m.mode = modeAddPatient
		m.inputs = []textinput.Model{newInput("patient name", 64)}
	case paneDoctors:
		m.mode = modeAddDoctor
		m.inputs = []textinput.Model{
			newInput("doctor name", 64),
			newInput("specialization", 64),
		}
	case paneAppointments:
		m.mode = modeBookAppointment
		m.inputs = []textinput.Model{
			newInput("patient id", 10),
			newInput("doctor id", 10),
			newInput("time (2024-01-01T10:00)", 32),
		}
	}

	m.inputs[0].Focus()
}

func (m *ConsoleModel) resetForm() {
	m.inputs = nil
	m.inputIndex = 0
	m.availability = 0
}

// formFieldCount includes the availability selector row on the doctor
// form, which is not a text input.
func (m ConsoleModel) formFieldCount() int {
	if m.mode == modeAddDoctor {
		return len(m.inputs) + 1
	}

	return len(m.inputs)
}

func (m ConsoleModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true

		return m, tea.Quit

	case "esc":
		m.resetForm()
		m.mode = modeBrowse

		return m, nil

	case "tab", "down":
		m.moveFormFocus(1)

		return m, nil

	case "shift+tab", "up":
		m.moveFormFocus(-1)

		return m, nil

	case "left", "right":
		if m.mode == modeAddDoctor && m.inputIndex == len(m.inputs) {
			n := len(model.Availabilities())
			if msg.String() == "right" {
				m.availability = (m.availability + 1) % n
			} else {
				m.availability = (m.availability + n - 1) % n
			}

			return m, nil
		}

	case "enter":
		if m.inputIndex < m.formFieldCount()-1 {
			m.moveFormFocus(1)

			return m, nil
		}

		return m.submitForm()
	}

	if m.inputIndex < len(m.inputs) {
		var cmd tea.Cmd

		m.inputs[m.inputIndex], cmd = m.inputs[m.inputIndex].Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *ConsoleModel) moveFormFocus(delta int) {
	if m.inputIndex < len(m.inputs) {
		m.inputs[m.inputIndex].Blur()
	}

	count := m.formFieldCount()
	m.inputIndex = (m.inputIndex + delta + count) % count

	if m.inputIndex < len(m.inputs) {
		m.inputs[m.inputIndex].Focus()
	}
}

func (m ConsoleModel) submitForm() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	m.busy = true

	dispatcher := m.dispatcher

	switch m.mode {
	case modeAddPatient:
		name := m.inputs[0].Value()

		return m, dispatchCmd("patient added", func(ctx context.Context) (*core.Snapshot, error) {
			return dispatcher.AddPatient(ctx, name)
		})

	case modeAddDoctor:
		name := m.inputs[0].Value()
		specialization := m.inputs[1].Value()
		availability := model.Availabilities()[m.availability]

		return m, dispatchCmd("doctor added", func(ctx context.Context) (*core.Snapshot, error) {
			return dispatcher.AddDoctor(ctx, name, specialization, availability)
		})

	case modeBookAppointment:
		patientID, _ := strconv.Atoi(strings.TrimSpace(m.inputs[0].Value()))
		doctorID, _ := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
		timeSlot := m.inputs[2].Value()

		return m, dispatchCmd("appointment booked", func(ctx context.Context) (*core.Snapshot, error) {
			return dispatcher.BookAppointment(ctx, patientID, doctorID, timeSlot)
		})
	}

	m.busy = false

	return m, nil
}

func (m ConsoleModel) cycleStatus() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	state := m.syncer.State()
	dispatcher := m.dispatcher

	switch m.focus {
	case paneQueue:
		patients := state.Patients()
		if len(patients) == 0 {
			return m, nil
		}

		p := patients[m.cursors[paneQueue]]
		next := p.Status.Next()
		m.busy = true
		m.notice = ""

		return m, dispatchCmd("", func(ctx context.Context) (*core.Snapshot, error) {
			return dispatcher.UpdatePatientStatus(ctx, p.ID, next)
		})

	case paneAppointments:
		appointments := state.Appointments()
		if len(appointments) == 0 {
			return m, nil
		}

		a := appointments[m.cursors[paneAppointments]]
		next := a.Status.Next()
		m.busy = true
		m.notice = ""

		return m, dispatchCmd("", func(ctx context.Context) (*core.Snapshot, error) {
			return dispatcher.UpdateAppointmentStatus(ctx, a.ID, next)
		})
	}

	return m, nil
}

func (m ConsoleModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	state := m.syncer.State()
	dispatcher := m.dispatcher

	switch m.focus {
	case paneQueue:
		patients := state.Patients()
		if len(patients) == 0 {
			return m, nil
		}

		id := patients[m.cursors[paneQueue]].ID
		m.busy = true
		m.notice = ""

		return m, dispatchCmd("patient removed", func(ctx context.Context) (*core.Snapshot, error) {
			return dispatcher.DeletePatient(ctx, id)
		})

	case paneDoctors:
		doctors := state.Doctors()
		if len(doctors) == 0 {
			return m, nil
		}

		id := doctors[m.cursors[paneDoctors]].ID
		m.busy = true
		m.notice = ""

		return m, dispatchCmd("doctor removed", func(ctx context.Context) (*core.Snapshot, error) {
			return dispatcher.DeleteDoctor(ctx, id)
		})

	case paneAppointments:
		appointments := state.Appointments()
		if len(appointments) == 0 {
			return m, nil
		}

		id := appointments[m.cursors[paneAppointments]].ID
		m.busy = true
		m.notice = ""

		return m, dispatchCmd("appointment removed", func(ctx context.Context) (*core.Snapshot, error) {
			return dispatcher.DeleteAppointment(ctx, id)
		})
	}

	return m, nil
}

func (m ConsoleModel) paneLen(p pane) int {
	state := m.syncer.State()

	switch p {
	case paneQueue:
		return len(state.Patients())
	case paneDoctors:
		return len(state.Doctors())
	default:
		return len(state.Appointments())
	}
}

func (m *ConsoleModel) clampCursors() {
	for p := paneQueue; p <= paneAppointments; p++ {
		if n := m.paneLen(p); m.cursors[p] >= n {
			m.cursors[p] = max(0, n-1)
		}
	}
}

func (m ConsoleModel) View() string {
	if m.quitting {
		return ""
	}

	state := m.syncer.State()

	if !state.Ready() {
		return docStyle.Render("Loading console...")
	}

	header := titleStyle.Render("Front Desk") + dimStyle.Render(fmt.Sprintf(
		"  %d waiting · %d doctors · %d appointments",
		state.WaitingCount(), len(state.Doctors()), len(state.Appointments())))

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderQueue(), m.renderDoctors(), m.renderAppointments())

	body := header + "\n\n" + panes

	if m.mode != modeBrowse {
		body += "\n" + m.renderForm()
	}

	if m.notice != "" {
		body += "\n" + noticeStyle.Render(m.notice)
	}

	body += "\n" + helpBarStyle.Render(m.helpLine())

	return docStyle.Render(body)
}

func (m ConsoleModel) helpLine() string {
	if m.mode != modeBrowse {
		return "enter submit · tab next field · esc cancel"
	}

	help := "tab pane · a add · x delete · r refresh · ctrl+l logout · q quit"
	if m.focus != paneDoctors {
		help = "s status · " + help
	}

	if m.busy {
		help += " · working..."
	}

	return help
}

func (m ConsoleModel) renderPane(p pane, title string, rows []string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("(empty)"))
	}

	for i, row := range rows {
		if p == m.focus && i == m.cursors[p] {
			b.WriteString(selectedRow.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}

		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	style := paneStyle
	if p == m.focus {
		style = focusedPane
	}

	return style.Render(b.String())
}

func (m ConsoleModel) renderQueue() string {
	state := m.syncer.State()
	rows := make([]string, 0, len(state.Patients()))

	for _, p := range state.Patients() {
		rows = append(rows, fmt.Sprintf("#%d %s [%s]", p.ID, p.Name, p.Status))
	}

	return m.renderPane(paneQueue, "Queue", rows)
}

func (m ConsoleModel) renderDoctors() string {
	state := m.syncer.State()
	rows := make([]string, 0, len(state.Doctors()))

	for _, d := range state.Doctors() {
		rows = append(rows, fmt.Sprintf("#%d %s · %s [%s]", d.ID, d.Name, d.Specialization, d.Availability))
	}

	return m.renderPane(paneDoctors, "Doctors", rows)
}

func (m ConsoleModel) renderAppointments() string {
	state := m.syncer.State()
	rows := make([]string, 0, len(state.Appointments()))

	for _, a := range state.Appointments() {
		rows = append(rows, fmt.Sprintf("#%d %s → %s @ %s [%s]",
			a.ID, a.PatientName(), a.DoctorName(), a.Time, a.Status))
	}

	return m.renderPane(paneAppointments, "Appointments", rows)
}

func (m ConsoleModel) renderForm() string {
	var b strings.Builder

	switch m.mode {
	case modeAddPatient:
		b.WriteString(titleStyle.Render("Add patient"))
	case modeAddDoctor:
		b.WriteString(titleStyle.Render("Add doctor"))
	case modeBookAppointment:
		b.WriteString(titleStyle.Render("Book appointment"))
	}

	b.WriteString("\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.mode == modeAddDoctor {
		choices := make([]string, 0, 3)

		for i, availability := range model.Availabilities() {
			label := string(availability)
			if i == m.availability {
				label = selectedRow.Render("[" + label + "]")
			}

			choices = append(choices, label)
		}

		marker := "  "
		if m.inputIndex == len(m.inputs) {
			marker = selectedRow.Render("> ")
		}

		b.WriteString(marker + strings.Join(choices, "  "))
		b.WriteString("\n")
	}

	return paneStyle.Render(b.String())
}
