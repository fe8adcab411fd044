package valueobject

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultBonusPolicy(t *testing.T) {
	policy := DefaultBonusPolicy()

	if err := policy.validate(); err != nil {
		t.Fatalf("default policy must be valid: %v", err)
	}
	if !policy.Cutoff.Equal(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected cutoff %v", policy.Cutoff)
	}

	expected := "Data de admissão a partir de 01/09/2025 torna o colaborador inelegível."
	if got := policy.IneligibilityReason(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestBonusPolicy_IsExtraGoal(t *testing.T) {
	policy := DefaultBonusPolicy()

	if !policy.IsExtraGoal("Receita Copa do Mundo de Clubes") {
		t.Error("expected keyword match regardless of case")
	}
	if policy.IsExtraGoal("Receita Líquida") {
		t.Error("expected no match")
	}

	policy.ExtraGoalKeyword = ""
	if policy.IsExtraGoal("Copa do Mundo de Clubes") {
		t.Error("empty keyword must never match")
	}
}

func TestBonusPolicy_Multiplier(t *testing.T) {
	policy := DefaultBonusPolicy()

	tests := []struct {
		level    string
		expected float64
		found    bool
	}{
		{level: "operacional", expected: 1.5, found: true},
		{level: "Analista", expected: 3, found: true},
		{level: "lideranca", expected: 4, found: true},
		{level: "DIRETORIA", expected: 5, found: true},
		{level: "estagio", expected: 0, found: false},
	}

	for _, tt := range tests {
		got, ok := policy.Multiplier(tt.level)
		if ok != tt.found || got != tt.expected {
			t.Errorf("level %s: expected (%v, %v), got (%v, %v)", tt.level, tt.expected, tt.found, got, ok)
		}
	}
}

func TestParseBonusPolicy(t *testing.T) {
	data := []byte(`
weights:
  company: 0.5
  area: 0.25
  individual: 0.25
reference_year: 2026
extra_goal_keyword: "mundial"
extra_points: 10
levels:
  - key: junior
    label: Júnior
    multiplier: 2
`)

	policy, err := ParseBonusPolicy(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if policy.CompanyWeight != 0.5 || policy.AreaWeight != 0.25 || policy.IndividualWeight != 0.25 {
		t.Errorf("unexpected weights: %+v", policy)
	}
	if !policy.Cutoff.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected cutoff moved to 2026, got %v", policy.Cutoff)
	}
	if policy.ExtraGoalKeyword != "mundial" || policy.ExtraPoints != 10 {
		t.Errorf("unexpected extra goal settings: %q %v", policy.ExtraGoalKeyword, policy.ExtraPoints)
	}
	if len(policy.Levels) != 1 || policy.Levels[0].Key != "junior" {
		t.Errorf("unexpected levels: %+v", policy.Levels)
	}
}

func TestParseBonusPolicy_KeepsDefaultsForMissingFields(t *testing.T) {
	policy, err := ParseBonusPolicy([]byte("extra_points: 15\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if policy.ExtraPoints != 15 {
		t.Errorf("expected 15 extra points, got %v", policy.ExtraPoints)
	}
	if policy.ReferenceYear != 2025 || len(policy.Levels) != 4 {
		t.Errorf("expected defaults to be kept, got %+v", policy)
	}
}

func TestParseBonusPolicy_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "weights do not sum to one", data: "weights:\n  company: 0.5\n  area: 0.5\n  individual: 0.5\n"},
		{name: "cutoff outside reference year", data: "eligibility_cutoff: 2024-09-01\n"},
		{name: "bad cutoff", data: "eligibility_cutoff: setembro\n"},
		{name: "non positive multiplier", data: "levels:\n  - key: x\n    multiplier: 0\n"},
		{name: "malformed yaml", data: "weights: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBonusPolicy([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadBonusPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("extra_points: 25\n"), 0o600); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	policy, err := LoadBonusPolicy(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.ExtraPoints != 25 {
		t.Errorf("expected 25, got %v", policy.ExtraPoints)
	}

	if _, err := LoadBonusPolicy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
