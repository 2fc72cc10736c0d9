package validation

// Errors carries the per-field failure messages of an all-fields validation
// pass. It satisfies error so services can return it through the usual path.
type Errors struct {
	Fields map[string]string
}

func (e *Errors) Error() string {
	return "validation failed"
}

// Check runs the rule set and returns an *Errors when any field fails.
func Check(rs RuleSet, values map[string]string) error {
	failures := rs.Validate(values)
	if len(failures) > 0 {
		return &Errors{Fields: failures}
	}
	return nil
}
