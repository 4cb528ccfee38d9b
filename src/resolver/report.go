package resolver

// Report holds the answers given while resolving unknown variables.
type Report struct {
	True  []string
	False []string
}

func (r *Report) RecordDecision(variable string, value bool) {
	if value {
		r.True = append(r.True, variable)
	} else {
		r.False = append(r.False, variable)
	}
}

func (r *Report) HasDecisions() bool {
	return len(r.True)+len(r.False) > 0
}
