package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inovacc/frontdesk/internal/application"
	"github.com/inovacc/frontdesk/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and configuration status",
	Long: `Show whether a session is stored and which clinic service the client
talks to. Makes no remote calls.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	e, err := newEngine(nil)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	baseURL := cfg.Server.BaseURL
	if serverFlag != "" {
		baseURL = serverFlag
	}

	session := "none (run 'frontdesk login')"
	if _, ok := e.sessions.Token(); ok {
		session = "active"
	}

	configPath, err := config.Path()
	if err != nil {
		return err
	}

	dataDir, err := application.DataDir()
	if err != nil {
		return err
	}

	fmt.Println("Frontdesk Status:")
	fmt.Println("=================")
	fmt.Printf("Session:        %s\n", session)
	fmt.Printf("Clinic service: %s\n", baseURL)
	fmt.Printf("Config file:    %s\n", configPath)
	fmt.Printf("Session store:  %s\n", filepath.Join(dataDir, "frontdesk.bolt"))

	return nil
}
