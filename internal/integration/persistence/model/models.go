package model

// All lists every model managed by auto-migration.
func All() []any {
	return []any{
		&UserModel{},
		&GoalModel{},
		&MilestoneModel{},
		&BudgetModel{},
	}
}
