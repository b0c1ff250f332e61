package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inovacc/frontdesk/internal/model"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Manage doctors",
}

var doctorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List doctors and their availability",
	RunE:  runDoctorList,
}

var doctorAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a doctor",
	Long: `Register a doctor.

Examples:
  frontdesk doctor add "Dr. Osei" --specialization Cardiology
  frontdesk doctor add "Dr. Lam" --specialization General --availability "Off Duty"`,
	Args: cobra.ExactArgs(1),
	RunE: runDoctorAdd,
}

var doctorRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a doctor",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoctorRemove,
}

var (
	doctorAddSpecialization string
	doctorAddAvailability   string
)

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.AddCommand(doctorListCmd)
	doctorCmd.AddCommand(doctorAddCmd)
	doctorCmd.AddCommand(doctorRemoveCmd)

	doctorAddCmd.Flags().StringVar(&doctorAddSpecialization, "specialization", "", "Medical specialization (required)")
	doctorAddCmd.Flags().StringVar(&doctorAddAvailability, "availability", string(model.DoctorAvailable), `One of "Available", "Busy", "Off Duty"`)

	_ = doctorAddCmd.MarkFlagRequired("specialization")
}

func runDoctorList(cmd *cobra.Command, _ []string) error {
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

	doctors := e.state.Doctors()
	if len(doctors) == 0 {
		fmt.Println("No doctors registered.")

		return nil
	}

	fmt.Printf("%-6s %-24s %-20s %s\n", "ID", "NAME", "SPECIALIZATION", "AVAILABILITY")

	for _, d := range doctors {
		fmt.Printf("%-6d %-24s %-20s %s\n", d.ID, d.Name, d.Specialization, d.Availability)
	}

	return nil
}

func runDoctorAdd(cmd *cobra.Command, args []string) error {
	availability, err := model.ParseDoctorAvailability(doctorAddAvailability)
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

	if _, err := e.dispatcher.AddDoctor(cmd.Context(), args[0], doctorAddSpecialization, availability); err != nil {
		return err
	}

	fmt.Printf("Doctor %q (%s) registered.\n", args[0], doctorAddSpecialization)

	return nil
}

func runDoctorRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid doctor id %q", args[0])
	}

	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireSession(e); err != nil {
		return err
	}

	if _, err := e.dispatcher.DeleteDoctor(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("Doctor %d removed.\n", id)

	return nil
}
