package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inovacc/frontdesk/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the clinic service",
	Long: `Authenticate against the clinic service and store the session token.

Missing credentials are prompted for; the password prompt does not echo.
The token is kept in the local session store until you run
'frontdesk logout', so the console works across restarts without
logging in again.`,
	RunE: runLogin,
}

var (
	loginUsername string
	loginPassword string
)

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Operator username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Operator password (prompted if omitted)")
}

func runLogin(cmd *cobra.Command, _ []string) error {
	username := loginUsername
	if username == "" {
		fmt.Print("Username: ")

		reader := bufio.NewReader(os.Stdin)

		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}

		username = strings.TrimSpace(line)
	}

	password := loginPassword
	if password == "" {
		fmt.Print("Password: ")

		bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))

		fmt.Println()

		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		password = string(bytePassword)
	}

	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	token, err := e.client.Login(cmd.Context(), username, password)
	if err != nil {
		// The only remote failure surfaced to the operator.
		return errors.New(api.LoginFailureMessage(err))
	}

	if err := e.sessions.SetToken(token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}

	fmt.Printf("Logged in. Run '%s console' to open the console.\n", rootCmd.Use)

	return nil
}
