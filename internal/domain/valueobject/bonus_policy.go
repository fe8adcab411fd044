// Package valueobject contains domain value objects for the goal tracking system.
package valueobject

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LevelMultiplier is a salary multiple offered for a job level.
type LevelMultiplier struct {
	Key        string  `yaml:"key" json:"key"`
	Label      string  `yaml:"label" json:"label"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

// BonusPolicy holds the parameters of the profit-sharing program.
type BonusPolicy struct {
	CompanyWeight    float64
	AreaWeight       float64
	IndividualWeight float64
	ReferenceYear    int
	Cutoff           time.Time
	ExtraGoalKeyword string
	ExtraPoints      float64
	Levels           []LevelMultiplier
}

// DefaultBonusPolicy returns the 2025 program parameters.
func DefaultBonusPolicy() BonusPolicy {
	return BonusPolicy{
		CompanyWeight:    0.4,
		AreaWeight:       0.3,
		IndividualWeight: 0.3,
		ReferenceYear:    2025,
		Cutoff:           time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		ExtraGoalKeyword: "copa do mundo de clubes",
		ExtraPoints:      20,
		Levels: []LevelMultiplier{
			{Key: "operacional", Label: "Operacional", Multiplier: 1.5},
			{Key: "analista", Label: "Analista, Supervisor, Assistente, Fisio", Multiplier: 3},
			{Key: "lideranca", Label: "Liderança, Especialistas", Multiplier: 4},
			{Key: "diretoria", Label: "Diretoria", Multiplier: 5},
		},
	}
}

// IsExtraGoal reports whether a KPI name carries the bonus-goal keyword.
func (p BonusPolicy) IsExtraGoal(kpiName string) bool {
	keyword := NormalizeText(p.ExtraGoalKeyword)
	if keyword == "" {
		return false
	}
	return strings.Contains(strings.ToLower(kpiName), keyword)
}

// Multiplier resolves a level key (case-insensitive) to its salary multiple.
func (p BonusPolicy) Multiplier(level string) (float64, bool) {
	key := NormalizeText(level)
	for _, l := range p.Levels {
		if NormalizeText(l.Key) == key {
			return l.Multiplier, true
		}
	}
	return 0, false
}

// IneligibilityReason is the message shown to employees hired on or after the cutoff.
func (p BonusPolicy) IneligibilityReason() string {
	return fmt.Sprintf("Data de admissão a partir de %s torna o colaborador inelegível.", p.Cutoff.Format("02/01/2006"))
}

// policyFile mirrors the YAML layout. Absent fields keep their defaults.
type policyFile struct {
	Weights *struct {
		Company    float64 `yaml:"company"`
		Area       float64 `yaml:"area"`
		Individual float64 `yaml:"individual"`
	} `yaml:"weights"`
	ReferenceYear    int               `yaml:"reference_year"`
	Cutoff           string            `yaml:"eligibility_cutoff"`
	ExtraGoalKeyword *string           `yaml:"extra_goal_keyword"`
	ExtraPoints      *float64          `yaml:"extra_points"`
	Levels           []LevelMultiplier `yaml:"levels"`
}

// LoadBonusPolicy reads a YAML policy file from path, layered over the defaults.
func LoadBonusPolicy(path string) (BonusPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BonusPolicy{}, fmt.Errorf("bonus policy: read %s: %w", path, err)
	}
	return ParseBonusPolicy(data)
}

// ParseBonusPolicy unmarshals YAML bytes into a validated BonusPolicy.
func ParseBonusPolicy(data []byte) (BonusPolicy, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return BonusPolicy{}, fmt.Errorf("bonus policy: parse: %w", err)
	}

	policy := DefaultBonusPolicy()
	if file.Weights != nil {
		policy.CompanyWeight = file.Weights.Company
		policy.AreaWeight = file.Weights.Area
		policy.IndividualWeight = file.Weights.Individual
	}
	if file.ReferenceYear != 0 {
		policy.ReferenceYear = file.ReferenceYear
		policy.Cutoff = time.Date(file.ReferenceYear, policy.Cutoff.Month(), policy.Cutoff.Day(), 0, 0, 0, 0, time.UTC)
	}
	if file.Cutoff != "" {
		cutoff, err := ParseDate(file.Cutoff)
		if err != nil {
			return BonusPolicy{}, fmt.Errorf("bonus policy: eligibility_cutoff: %w", err)
		}
		policy.Cutoff = cutoff
	}
	if file.ExtraGoalKeyword != nil {
		policy.ExtraGoalKeyword = *file.ExtraGoalKeyword
	}
	if file.ExtraPoints != nil {
		policy.ExtraPoints = *file.ExtraPoints
	}
	if len(file.Levels) > 0 {
		policy.Levels = file.Levels
	}

	if err := policy.validate(); err != nil {
		return BonusPolicy{}, err
	}
	return policy, nil
}

func (p BonusPolicy) validate() error {
	var errs []string
	if p.CompanyWeight < 0 || p.AreaWeight < 0 || p.IndividualWeight < 0 {
		errs = append(errs, "weights must not be negative")
	}
	if sum := p.CompanyWeight + p.AreaWeight + p.IndividualWeight; math.Abs(sum-1) > 1e-9 {
		errs = append(errs, fmt.Sprintf("weights must sum to 1, got %g", sum))
	}
	if p.Cutoff.Year() != p.ReferenceYear {
		errs = append(errs, "eligibility_cutoff must fall in reference_year")
	}
	if p.ExtraPoints < 0 {
		errs = append(errs, "extra_points must not be negative")
	}
	for i, l := range p.Levels {
		if l.Key == "" {
			errs = append(errs, fmt.Sprintf("levels[%d].key is required", i))
		}
		if l.Multiplier <= 0 {
			errs = append(errs, fmt.Sprintf("levels[%d].multiplier must be positive", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("bonus policy: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
