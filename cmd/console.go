package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inovacc/frontdesk/internal/application"
	"github.com/inovacc/frontdesk/internal/cli"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive front desk console",
	Long: `Open the interactive front desk console.

The console shows the patient queue, the doctors and the appointments
side by side, refreshed from the clinic service after every change.
Requires an active session; without one you are sent back to
'frontdesk login'.`,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(_ *cobra.Command, _ []string) error {
	dataDir, err := application.DataDir()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so the observability sink moves to a
	// file for the duration of the session.
	logFile, err := os.OpenFile(filepath.Join(dataDir, "frontdesk.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	defer func() {
		_ = logFile.Close()
	}()

	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))

	e, err := newEngine(logger)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireSession(e); err != nil {
		return err
	}

	program := tea.NewProgram(
		cli.NewConsole(e.syncer, e.dispatcher, e.gate),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("console failed: %w", err)
	}

	if console, ok := final.(cli.ConsoleModel); ok && console.LoggedOut() {
		fmt.Printf("Logged out. Run '%s login' to start a new session.\n", rootCmd.Use)
	}

	return nil
}
