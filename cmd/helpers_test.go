package cmd

import (
	"strings"
	"testing"

	"github.com/inovacc/frontdesk/internal/core"
)

type fakeSlot struct {
	token string
}

func (f *fakeSlot) Token() (string, bool) { return f.token, f.token != "" }
func (f *fakeSlot) ClearToken() error     { f.token = ""; return nil }

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "no session", token: "", wantErr: true},
		{name: "active session", token: "opaque"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &engine{gate: core.NewGate(&fakeSlot{token: tt.token}, nil)}

			err := requireSession(e)
			if (err != nil) != tt.wantErr {
				t.Errorf("requireSession() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr && !strings.Contains(err.Error(), "login") {
				t.Errorf("requireSession() error %q should point at the login command", err)
			}
		})
	}
}

func TestCommandTree(t *testing.T) {
	root := GetRootCmd()

	for _, name := range []string{"login", "logout", "status", "console", "patient", "doctor", "appointment"} {
		found := false

		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
