package headless

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// PropertySource reads properties by surface.KEY. *shell.App satisfies it.
type PropertySource interface {
	Property(name string) (value interface{}, set bool, err error)
}

// ExpectationResult is the outcome of one expected property value
type ExpectationResult struct {
	Step     string      `json:"step"`
	Property string      `json:"property"`
	Expected interface{} `json:"expected"`
	Actual   interface{} `json:"actual"`
	Passed   bool        `json:"passed"`
	Error    string      `json:"error,omitempty"`
}

// ExpectationResults contains the results of every checked expectation
type ExpectationResults struct {
	AllPassed bool                `json:"all_passed"`
	Failed    int                 `json:"failed"`
	Results   []ExpectationResult `json:"results"`
}

// Record appends a result and updates the totals.
func (r *ExpectationResults) Record(result ExpectationResult) {
	r.Results = append(r.Results, result)
	if !result.Passed {
		r.Failed++
	}
	r.AllPassed = r.Failed == 0
}

// CheckExpectations compares every expected value of a step with the live
// property, in property name order.
func CheckExpectations(src PropertySource, step string, expect map[string]interface{}) []ExpectationResult {
	names := make([]string, 0, len(expect))
	for name := range expect {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]ExpectationResult, 0, len(names))
	for _, name := range names {
		results = append(results, checkExpectation(src, step, name, expect[name]))
	}
	return results
}

func checkExpectation(src PropertySource, step, name string, want interface{}) ExpectationResult {
	result := ExpectationResult{Step: step, Property: name, Expected: want}

	got, set, err := src.Property(name)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if !set {
		result.Passed = want == nil
		if !result.Passed {
			result.Error = "property is not set"
		}
		return result
	}

	result.Actual = got
	ok, err := valuesMatch(want, got)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Passed = ok
	if !ok {
		result.Error = fmt.Sprintf("expected %v, got %v", want, got)
	}
	return result
}

// valuesMatch compares a scenario value with a property value. Both go
// through JSON so YAML numbers and maps compare equal to typed numbers and
// structs. A string also matches a value whose String method returns it.
func valuesMatch(want, got interface{}) (bool, error) {
	if s, ok := want.(string); ok {
		if str, ok := got.(fmt.Stringer); ok && str.String() == s {
			return true, nil
		}
	}
	w, err := normalize(want)
	if err != nil {
		return false, fmt.Errorf("expected value: %w", err)
	}
	g, err := normalize(got)
	if err != nil {
		return false, fmt.Errorf("actual value: %w", err)
	}
	return reflect.DeepEqual(w, g), nil
}

func normalize(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
