package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inovacc/frontdesk/internal/model"
)

var appointmentCmd = &cobra.Command{
	Use:     "appointment",
	Aliases: []string{"appt"},
	Short:   "Manage appointments",
}

var appointmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	RunE:  runAppointmentList,
}

var appointmentBookCmd = &cobra.Command{
	Use:   "book <patient-id> <doctor-id> <time>",
	Short: "Book a patient with a doctor",
	Long: `Book a patient with a doctor at the given time.

The time is passed to the clinic service as-is, e.g. 2024-01-01T10:00.

Example:
  frontdesk appointment book 3 7 2024-01-01T10:00`,
	Args: cobra.ExactArgs(3),
	RunE: runAppointmentBook,
}

var appointmentStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Update an appointment's status",
	Long: `Update an appointment's status.

Valid statuses: "Booked", "Completed", "Canceled".`,
	Args: cobra.ExactArgs(2),
	RunE: runAppointmentStatus,
}

var appointmentRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an appointment",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppointmentRemove,
}

func init() {
	rootCmd.AddCommand(appointmentCmd)

	appointmentCmd.AddCommand(appointmentListCmd)
	appointmentCmd.AddCommand(appointmentBookCmd)
	appointmentCmd.AddCommand(appointmentStatusCmd)
	appointmentCmd.AddCommand(appointmentRemoveCmd)
}

func runAppointmentList(cmd *cobra.Command, _ []string) error {
	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireSession(e); err != nil {
		return err
	}

	if err := e.syncer.Refresh(cmd.Context()); err != nil {
		return err
	}

	appointments := e.state.Appointments()
	if len(appointments) == 0 {
		fmt.Println("No appointments booked.")

		return nil
	}

	fmt.Printf("%-6s %-20s %-24s %-24s %s\n", "ID", "TIME", "PATIENT", "DOCTOR", "STATUS")

	for _, a := range appointments {
		fmt.Printf("%-6d %-20s %-24s %-24s %s\n", a.ID, a.Time, a.PatientName(), a.DoctorName(), a.Status)
	}

	return nil
}

func runAppointmentBook(cmd *cobra.Command, args []string) error {
	patientID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid patient id %q", args[0])
	}

	doctorID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid doctor id %q", args[1])
	}

	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireSession(e); err != nil {
		return err
	}

	if _, err := e.dispatcher.BookAppointment(cmd.Context(), patientID, doctorID, args[2]); err != nil {
		return err
	}

	fmt.Printf("Appointment booked: patient %d with doctor %d at %s.\n", patientID, doctorID, args[2])

	return nil
}

func runAppointmentStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid appointment id %q", args[0])
	}

	status, err := model.ParseAppointmentStatus(args[1])
	if err != nil {
		return err
	}

	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireSession(e); err != nil {
		return err
	}

	if _, err := e.dispatcher.UpdateAppointmentStatus(cmd.Context(), id, status); err != nil {
		return err
	}

	fmt.Printf("Appointment %d is now %q.\n", id, status)

	return nil
}

func runAppointmentRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid appointment id %q", args[0])
	}

	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireSession(e); err != nil {
		return err
	}

	if _, err := e.dispatcher.DeleteAppointment(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("Appointment %d removed.\n", id)

	return nil
}
