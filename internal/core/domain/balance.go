package domain

// CategoryBalance is one entitlement/usage pair on a ledger row.
type CategoryBalance struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

// Remaining returns the unconsumed days for the category.
func (c CategoryBalance) Remaining() int {
	return c.Total - c.Used
}

// LeaveBalance is the per-user-per-year ledger row of entitlements and usage.
type LeaveBalance struct {
	BalanceID   string          `json:"balanceID"`
	UserID      string          `json:"userID"`
	Year        int             `json:"year"`
	Sick        CategoryBalance `json:"sickLeave"`
	Personal    CategoryBalance `json:"personalLeave"`
	Maternity   CategoryBalance `json:"maternityLeave"`
	Study       CategoryBalance `json:"studyLeave"`
	Bereavement CategoryBalance `json:"bereavementLeave"`
	AuditFields
}

// category returns a pointer to the pair backing the given type, or nil for
// untracked types.
func (b *LeaveBalance) category(t LeaveType) *CategoryBalance {
	switch t {
	case SickLeave:
		return &b.Sick
	case PersonalLeave:
		return &b.Personal
	case MaternityLeave:
		return &b.Maternity
	case StudyLeave:
		return &b.Study
	case BereavementLeave:
		return &b.Bereavement
	}
	return nil
}

// Remaining returns the unconsumed days for the type. The second return is
// false for untracked types (Unpaid Leave, Other), which carry no limit.
func (b *LeaveBalance) Remaining(t LeaveType) (int, bool) {
	c := b.category(t)
	if c == nil {
		return 0, false
	}
	return c.Remaining(), true
}

// ApplyUsage adds days to the type's used counter. Untracked types are a
// no-op. No upper clamp is applied; callers guard sufficiency before use.
func (b *LeaveBalance) ApplyUsage(t LeaveType, days int) {
	if c := b.category(t); c != nil {
		c.Used += days
	}
}
