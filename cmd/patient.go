package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inovacc/frontdesk/internal/model"
)

var patientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage the patient queue",
}

var patientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the patient queue",
	RunE:  runPatientList,
}

var patientAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a patient to the queue",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatientAdd,
}

var patientStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Update a patient's queue status",
	Long: `Update a patient's queue status.

Valid statuses: "Waiting", "With Doctor", "Completed".`,
	Args: cobra.ExactArgs(2),
	RunE: runPatientStatus,
}

var patientRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a patient from the queue",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatientRemove,
}

func init() {
	rootCmd.AddCommand(patientCmd)

	patientCmd.AddCommand(patientListCmd)
	patientCmd.AddCommand(patientAddCmd)
	patientCmd.AddCommand(patientStatusCmd)
	patientCmd.AddCommand(patientRemoveCmd)
}

func runPatientList(cmd *cobra.Command, _ []string) error {
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

	patients := e.state.Patients()
	if len(patients) == 0 {
		fmt.Println("The queue is empty.")

		return nil
	}

	fmt.Printf("%-6s %-24s %s\n", "ID", "NAME", "STATUS")

	for _, p := range patients {
		fmt.Printf("%-6d %-24s %s\n", p.ID, p.Name, p.Status)
	}

	return nil
}

func runPatientAdd(cmd *cobra.Command, args []string) error {
	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireSession(e); err != nil {
		return err
	}

	if _, err := e.dispatcher.AddPatient(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Patient %q added to the queue.\n", args[0])

	return nil
}

func runPatientStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid patient id %q", args[0])
	}

	status, err := model.ParsePatientStatus(args[1])
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

	if _, err := e.dispatcher.UpdatePatientStatus(cmd.Context(), id, status); err != nil {
		return err
	}

	fmt.Printf("Patient %d is now %q.\n", id, status)

	return nil
}

func runPatientRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid patient id %q", args[0])
	}

	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireSession(e); err != nil {
		return err
	}

	if _, err := e.dispatcher.DeletePatient(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("Patient %d removed.\n", id)

	return nil
}
