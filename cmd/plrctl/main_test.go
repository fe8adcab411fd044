package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BONUS_POLICY_FILE", "")

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	out, err := run(t, "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sub := range []string{"simulate", "tax", "policy", "version"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output missing %q", sub)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "plrctl dev") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestSimulateCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  bool
	}{
		{
			name:     "analyst with default individual score",
			args:     []string{"simulate", "--salary", "5000", "--level", "analista", "--company", "80", "--area", "80"},
			contains: []string{"x3", "86%", "R$ 12.900,00", "R$ 617,77", "R$ 12.282,23"},
		},
		{
			name:     "custom multiplier overrides level",
			args:     []string{"simulate", "--salary", "R$ 1.000,00", "--multiplier", "2", "--company", "100", "--area", "100"},
			contains: []string{"custom", "R$ 2.000,00", "R$ 0,00"},
		},
		{
			name:     "hired after cutoff",
			args:     []string{"simulate", "--salary", "5000", "--level", "diretoria", "--company", "100", "--area", "100", "--hire-date", "2025-09-01"},
			contains: []string{"Not eligible", "01/09/2025", "R$ 0,00"},
		},
		{
			name:     "hired during the reference year",
			args:     []string{"simulate", "--salary", "1000", "--level", "operacional", "--company", "100", "--area", "100", "--hire-date", "01/07/2025"},
			contains: []string{"Days worked:    184"},
		},
		{
			name:    "unknown level",
			args:    []string{"simulate", "--salary", "5000", "--level", "estagiario"},
			wantErr: true,
		},
		{
			name:    "missing salary",
			args:    []string{"simulate", "--level", "analista"},
			wantErr: true,
		},
		{
			name:    "invalid hire date",
			args:    []string{"simulate", "--salary", "5000", "--hire-date", "someday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output %q", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestTaxCmd(t *testing.T) {
	out, err := run(t, "tax", "20000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"R$ 20.000,00", "R$ 2.376,22", "R$ 17.623,78"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "DEDUCTION") {
		t.Error("table should only be printed with --table")
	}
}

func TestTaxCmd_Table(t *testing.T) {
	out, err := run(t, "tax")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"DEDUCTION", "R$ 7.640,80", "27,5%", "above"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestPolicyCmd(t *testing.T) {
	out, err := run(t, "policy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"company: 0.4", "2025-09-01", "key: diretoria"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestPolicyFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	data := "levels:\n  - key: junior\n    label: Junior\n    multiplier: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--policy", path, "simulate", "--salary", "1000", "--level", "junior", "--company", "100", "--area", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "R$ 2.000,00") {
		t.Errorf("expected custom level to apply:\n%s", out)
	}

	if _, err := run(t, "--policy", filepath.Join(t.TempDir(), "missing.yaml"), "policy"); err == nil {
		t.Error("expected error for missing policy file")
	}
}
