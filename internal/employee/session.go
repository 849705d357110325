package employee

// EditSession pairs the last known-persisted snapshot of an employee with the
// working copy mutated by form edits. The snapshot is captured when the
// session starts, restored on cancel, and replaced on a successful save.
type EditSession struct {
	baseline *Employee
	working  *Employee
}

// NewEditSession snapshots the freshly loaded record and hands out an
// independent working copy for editing.
func NewEditSession(loaded *Employee) *EditSession {
	return &EditSession{
		baseline: loaded.Clone(),
		working:  loaded.Clone(),
	}
}

// Working returns the in-progress copy; edits mutate this record.
func (s *EditSession) Working() *Employee {
	return s.working
}

// Baseline returns the comparison point for detecting unsaved edits.
func (s *EditSession) Baseline() *Employee {
	return s.baseline
}

func (s *EditSession) HasUnsavedChanges() bool {
	return HasUnsavedChanges(s.baseline, s.working)
}

// Cancel discards edits by restoring the baseline into the working copy.
func (s *EditSession) Cancel() {
	s.working = s.baseline.Clone()
}

// Commit replaces the baseline after a successful save, so the saved state
// becomes the new comparison point.
func (s *EditSession) Commit(saved *Employee) {
	s.baseline = saved.Clone()
	s.working = saved.Clone()
}
