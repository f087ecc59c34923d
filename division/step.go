package division

import "math/rand"

// StepResult summarizes one synchronous update.
type StepResult struct {
	Committed  int // vertices that left None this step
	Incomplete int // vertices still at None afterwards
}

// Step advances s by one synchronous update under rule. Decisions read the
// start-of-step roles only; commitments are applied afterwards. rng resolves
// role choices and must not be shared with concurrent steps.
//
// Complexity: O(V + E).
func Step(s *State, rule Rule, rng *rand.Rand) StepResult {
	type commit struct {
		i int
		r Role
	}
	var pending []commit

	incomplete := 0
	for i, r := range s.roles {
		if r != None {
			continue
		}
		incomplete++
		nb := s.neighborhood(i)
		if nb.Distinct() == 0 || !rule.Commits(i, nb) {
			continue
		}
		pending = append(pending, commit{i: i, r: choose(nb, rng)})
	}
	for _, c := range pending {
		s.roles[c.i] = c.r
	}

	return StepResult{Committed: len(pending), Incomplete: incomplete - len(pending)}
}

// MissingRoles reports, per vertex ID, how many roles are absent from its
// neighborhood in s.
func MissingRoles(s *State) map[int]int {
	out := make(map[int]int, len(s.roles))
	for i, id := range s.topo.ids {
		out[id] = s.neighborhood(i).Missing()
	}

	return out
}

// CompletenessDeficit is the sum of MissingRoles divided by NumRoles: the
// number of "role-complete neighborhoods" the state falls short of.
func CompletenessDeficit(s *State) float64 {
	total := 0
	for i := range s.roles {
		total += s.neighborhood(i).Missing()
	}

	return float64(total) / NumRoles
}
