package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Long: `Clear the stored session token.

This is the only way to leave an authenticated state; the client never
expires the token on its own.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(_ *cobra.Command, _ []string) error {
	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if _, ok := e.sessions.Token(); !ok {
		fmt.Println("No active session.")

		return nil
	}

	if err := e.gate.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fmt.Println("Logged out.")

	return nil
}
