package milestone

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/domain/entity"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/persistence"
	"github.com/goal-tracker/backend/internal/integration/persistence/persistencetest"
)

var (
	admin   = &entity.User{Login: "admin", Role: entity.RoleAdmin}
	tiUser  = &entity.User{Login: "ti", Role: entity.RoleArea, Area: "TI"}
	rhUser  = &entity.User{Login: "rh", Role: entity.RoleArea, Area: "RH"}
	ceoUser = &entity.User{Login: "ceo", Role: entity.RoleCEO}
)

type fixture struct {
	goals      adapter.GoalRepository
	milestones adapter.MilestoneRepository
	syncer     *ProgressSyncer
	goal       *entity.GoalRecord
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := persistencetest.NewDB(t)
	f := &fixture{
		goals:      persistence.NewGoalRepository(db),
		milestones: persistence.NewMilestoneRepository(db),
	}
	f.syncer = NewProgressSyncer(f.goals, f.milestones, nil, NewGoalLocks())

	f.goal = entity.NewGoalRecord(entity.GoalTypeProjects, "TI", "ERP", "Implantar ERP")
	if err := f.goals.Save(context.Background(), f.goal); err != nil {
		t.Fatalf("failed to save goal: %v", err)
	}
	return f
}

func (f *fixture) addStep(t *testing.T, name, weight string) *entity.MilestoneStep {
	t.Helper()
	goalID := f.goal.ID
	output, err := NewSaveMilestoneUseCase(f.goals, f.milestones, f.syncer).Execute(context.Background(), SaveMilestoneInput{
		Actor:  admin,
		GoalID: &goalID,
		Step:   name,
		Weight: weight,
	})
	if err != nil {
		t.Fatalf("failed to save milestone: %v", err)
	}
	return output.Milestone
}

func (f *fixture) toggle(t *testing.T, actor *entity.User, id uuid.UUID, status string) {
	t.Helper()
	_, err := NewToggleMilestoneUseCase(f.milestones, f.syncer).Execute(context.Background(), ToggleMilestoneInput{
		Actor:       actor,
		MilestoneID: id,
		Status:      status,
	})
	if err != nil {
		t.Fatalf("failed to toggle milestone: %v", err)
	}
}

func (f *fixture) attainment(t *testing.T) (float64, entity.GoalStatus) {
	t.Helper()
	goal, err := f.goals.FindByID(context.Background(), f.goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	return goal.AttainmentValue(), goal.Status
}

func milestoneErrorCode(t *testing.T, err error) domainerror.MilestoneErrorCode {
	t.Helper()
	var milestoneErr *domainerror.MilestoneError
	if !errors.As(err, &milestoneErr) {
		t.Fatalf("expected MilestoneError, got %v", err)
	}
	return milestoneErr.Code
}

func TestToggleMilestoneUseCase_RecomputesGoal(t *testing.T) {
	f := newFixture(t)
	kickoff := f.addStep(t, "Kickoff", "30")
	golive := f.addStep(t, "Go-live", "70")

	steps := []struct {
		actor    *entity.User
		id       uuid.UUID
		status   string
		expected float64
		goal     entity.GoalStatus
	}{
		{actor: tiUser, id: kickoff.ID, status: "done", expected: 30, goal: entity.GoalStatusInProgress},
		{actor: admin, id: golive.ID, status: "", expected: 100, goal: entity.GoalStatusCompleted},
		{actor: tiUser, id: kickoff.ID, status: "", expected: 70, goal: entity.GoalStatusInProgress},
		{actor: tiUser, id: golive.ID, status: "PENDING", expected: 0, goal: entity.GoalStatusInProgress},
	}

	for i, s := range steps {
		f.toggle(t, s.actor, s.id, s.status)

		attainment, status := f.attainment(t)
		if attainment != s.expected || status != s.goal {
			t.Errorf("step %d: expected %v/%s, got %v/%s", i, s.expected, s.goal, attainment, status)
		}
	}
}

func TestToggleMilestoneUseCase_Rejects(t *testing.T) {
	f := newFixture(t)
	step := f.addStep(t, "Kickoff", "30")
	uc := NewToggleMilestoneUseCase(f.milestones, f.syncer)

	tests := []struct {
		name     string
		input    ToggleMilestoneInput
		expected domainerror.MilestoneErrorCode
	}{
		{name: "other area", input: ToggleMilestoneInput{Actor: rhUser, MilestoneID: step.ID}, expected: domainerror.ErrCodeMilestoneForbidden},
		{name: "unknown status", input: ToggleMilestoneInput{Actor: admin, MilestoneID: step.ID, Status: "halfway"}, expected: domainerror.ErrCodeInvalidMilestoneStatus},
		{name: "unknown milestone", input: ToggleMilestoneInput{Actor: admin, MilestoneID: uuid.New()}, expected: domainerror.ErrCodeMilestoneNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if code := milestoneErrorCode(t, err); code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, code)
			}
		})
	}

	stored, err := f.milestones.FindByID(context.Background(), step.ID)
	if err != nil {
		t.Fatalf("failed to reload milestone: %v", err)
	}
	if stored.IsDone() {
		t.Error("expected rejected toggles to leave the step pending")
	}
}

func TestToggleMilestoneUseCase_ConcurrentToggles(t *testing.T) {
	f := newFixture(t)
	var ids []uuid.UUID
	for i := 0; i < 8; i++ {
		ids = append(ids, f.addStep(t, "step", "10").ID)
	}
	uc := NewToggleMilestoneUseCase(f.milestones, f.syncer)

	var wg sync.WaitGroup
	errs := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), ToggleMilestoneInput{Actor: admin, MilestoneID: id, Status: "done"})
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if attainment, status := f.attainment(t); attainment != 100 || status != entity.GoalStatusCompleted {
		t.Errorf("expected 100/%s after all toggles, got %v/%s", entity.GoalStatusCompleted, attainment, status)
	}
}

// interleavedMilestones runs interleave once, right after the first FindByID
// returns, the way a concurrent request would.
type interleavedMilestones struct {
	adapter.MilestoneRepository
	interleave func()
	done       bool
}

func (r *interleavedMilestones) FindByID(ctx context.Context, id uuid.UUID) (*entity.MilestoneStep, error) {
	step, err := r.MilestoneRepository.FindByID(ctx, id)
	if !r.done && r.interleave != nil {
		r.done = true
		r.interleave()
	}
	return step, err
}

func TestToggleMilestoneUseCase_InterleavedFlips(t *testing.T) {
	f := newFixture(t)
	step := f.addStep(t, "Kickoff", "10")

	repo := &interleavedMilestones{MilestoneRepository: f.milestones}
	uc := NewToggleMilestoneUseCase(repo, f.syncer)
	repo.interleave = func() {
		if _, err := uc.Execute(context.Background(), ToggleMilestoneInput{Actor: admin, MilestoneID: step.ID}); err != nil {
			t.Fatalf("unexpected error in interleaved flip: %v", err)
		}
	}

	output, err := uc.Execute(context.Background(), ToggleMilestoneInput{Actor: admin, MilestoneID: step.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Milestone.Status != entity.MilestoneStatusPending {
		t.Errorf("expected two flips to end pending, got %s", output.Milestone.Status)
	}
	stored, err := f.milestones.FindByID(context.Background(), step.ID)
	if err != nil {
		t.Fatalf("failed to reload milestone: %v", err)
	}
	if stored.Status != entity.MilestoneStatusPending {
		t.Errorf("expected stored status pending, got %s", stored.Status)
	}
	if attainment, _ := f.attainment(t); attainment != 0 {
		t.Errorf("expected attainment 0, got %v", attainment)
	}
}

func TestToggleMilestoneUseCase_ConcurrentFlipsOfOneStep(t *testing.T) {
	f := newFixture(t)
	step := f.addStep(t, "Kickoff", "10")
	uc := NewToggleMilestoneUseCase(f.milestones, f.syncer)

	const flips = 10
	var wg sync.WaitGroup
	errs := make(chan error, flips)
	for i := 0; i < flips; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), ToggleMilestoneInput{Actor: admin, MilestoneID: step.ID})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if attainment, status := f.attainment(t); attainment != 0 || status != entity.GoalStatusInProgress {
		t.Errorf("expected an even number of flips to end at 0/%s, got %v/%s", entity.GoalStatusInProgress, attainment, status)
	}
}

func TestSaveMilestoneUseCase_Validation(t *testing.T) {
	f := newFixture(t)
	uc := NewSaveMilestoneUseCase(f.goals, f.milestones, f.syncer)
	missing := uuid.New()

	org := entity.NewGoalRecord(entity.GoalTypeOrganizational, "TI", "Launch", "")
	if err := f.goals.Save(context.Background(), org); err != nil {
		t.Fatalf("failed to save goal: %v", err)
	}
	orgID := org.ID

	tests := []struct {
		name     string
		input    SaveMilestoneInput
		expected domainerror.MilestoneErrorCode
	}{
		{name: "non admin", input: SaveMilestoneInput{Actor: ceoUser, Project: "ERP", Step: "x"}, expected: domainerror.ErrCodeMilestoneForbidden},
		{name: "missing step", input: SaveMilestoneInput{Actor: admin, Project: "ERP"}, expected: domainerror.ErrCodeMilestoneStepRequired},
		{name: "unlinked", input: SaveMilestoneInput{Actor: admin, Step: "x"}, expected: domainerror.ErrCodeMilestoneUnlinked},
		{name: "unknown goal", input: SaveMilestoneInput{Actor: admin, GoalID: &missing, Step: "x"}, expected: domainerror.ErrCodeMilestoneUnlinked},
		{name: "goal is not a project", input: SaveMilestoneInput{Actor: admin, GoalID: &orgID, Step: "x"}, expected: domainerror.ErrCodeMilestoneGoalNotProject},
		{name: "unknown milestone", input: SaveMilestoneInput{Actor: admin, MilestoneID: &missing, Project: "ERP", Step: "x"}, expected: domainerror.ErrCodeMilestoneNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if code := milestoneErrorCode(t, err); code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, code)
			}
		})
	}
}

func TestSaveMilestoneUseCase_ProjectLinkage(t *testing.T) {
	f := newFixture(t)
	uc := NewSaveMilestoneUseCase(f.goals, f.milestones, f.syncer)

	output, err := uc.Execute(context.Background(), SaveMilestoneInput{Actor: admin, Project: " erp ", Step: "Contrato", Weight: "2", Status: "done"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Execute(context.Background(), SaveMilestoneInput{Actor: admin, Project: "ERP", Step: "Treinamento", Weight: "3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if attainment, _ := f.attainment(t); attainment != 40 {
		t.Errorf("expected 40, got %v", attainment)
	}

	id := output.Milestone.ID
	if _, err := uc.Execute(context.Background(), SaveMilestoneInput{Actor: admin, MilestoneID: &id, Project: "ERP", Step: "Contrato", Weight: "7", Status: "done"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attainment, _ := f.attainment(t); attainment != 70 {
		t.Errorf("expected 70 after reweighting, got %v", attainment)
	}
}

func TestSaveMilestoneUseCase_OnlyProjectGoalsAreDriven(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	attainment := 95.0
	org := entity.NewGoalRecord(entity.GoalTypeOrganizational, "TI", "Launch", "")
	org.Attainment = &attainment
	if err := f.goals.Save(ctx, org); err != nil {
		t.Fatalf("failed to save goal: %v", err)
	}

	output, err := NewSaveMilestoneUseCase(f.goals, f.milestones, f.syncer).Execute(ctx, SaveMilestoneInput{
		Actor:   admin,
		Project: "launch",
		Step:    "Announce",
		Weight:  "1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	toggled, err := NewToggleMilestoneUseCase(f.milestones, f.syncer).Execute(ctx, ToggleMilestoneInput{
		Actor:       admin,
		MilestoneID: output.Milestone.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toggled.Goals) != 0 {
		t.Errorf("expected no driven goals, got %d", len(toggled.Goals))
	}

	stored, err := f.goals.FindByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if stored.AttainmentValue() != 95 || stored.Status != entity.GoalStatusInProgress {
		t.Errorf("expected the manual attainment 95 to be kept, got %v/%s", stored.AttainmentValue(), stored.Status)
	}
}

func TestListAndDeleteMilestones(t *testing.T) {
	f := newFixture(t)
	kickoff := f.addStep(t, "Kickoff", "30")
	f.addStep(t, "Go-live", "70")
	f.toggle(t, admin, kickoff.ID, "done")

	list := NewListMilestonesUseCase(f.goals, f.milestones)
	output, err := list.Execute(context.Background(), ListMilestonesInput{Actor: tiUser, GoalID: f.goal.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Milestones) != 2 || output.Progress != 30 {
		t.Errorf("expected 2 milestones at 30%%, got %d at %v", len(output.Milestones), output.Progress)
	}

	if _, err := list.Execute(context.Background(), ListMilestonesInput{Actor: rhUser, GoalID: f.goal.ID}); err == nil {
		t.Error("expected other area to be rejected")
	}

	del := NewDeleteMilestoneUseCase(f.milestones, f.syncer)
	if _, err := del.Execute(context.Background(), DeleteMilestoneInput{Actor: tiUser, MilestoneID: kickoff.ID}); err == nil {
		t.Error("expected area user to be rejected")
	}
	if _, err := del.Execute(context.Background(), DeleteMilestoneInput{Actor: admin, MilestoneID: kickoff.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if attainment, _ := f.attainment(t); attainment != 0 {
		t.Errorf("expected 0 once the done step is gone, got %v", attainment)
	}
}

func TestGoalLocks_LockOrderIndependent(t *testing.T) {
	locks := NewGoalLocks()
	a, b := uuid.New(), uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			locks.Lock([]uuid.UUID{a, b})()
		}()
		go func() {
			defer wg.Done()
			locks.Lock([]uuid.UUID{b, a})()
		}()
	}
	wg.Wait()
}
