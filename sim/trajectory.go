package sim

// Trajectory is the number of incomplete vertices after seeding (index 0)
// and after every step that followed.
type Trajectory []int

// Final returns the last recorded incomplete count, or 0 for an empty
// trajectory.
func (t Trajectory) Final() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// CompletionRate returns the fraction of n vertices holding a role at the
// end of the trajectory.
func (t Trajectory) CompletionRate(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n-t.Final()) / float64(n)
}

// StepsToConvergence returns the index of the first zero entry, i.e. the
// number of steps taken to complete every vertex, and true. A trajectory
// that never reaches zero yields (maxSteps, false).
func (t Trajectory) StepsToConvergence(maxSteps int) (int, bool) {
	for i, x := range t {
		if x == 0 {
			return i, true
		}
	}
	return maxSteps, false
}
