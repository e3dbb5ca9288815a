// Package suite runs batches of formulas described in YAML files against their expected results.
//
// A suite file looks like:
//
//	grammar: legacy
//	cases:
//	  - name: conjunction
//	    input: "P ∧ Q;P=T,Q=F"
//	    want: false
//	  - name: unbound atom
//	    input: "P ∧ R;P=T"
//	    error: unknown-atom
//
// A case either expects a truth value (want) or the kind of error (error) its input triggers.
package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/crillab/propeval/prop"
)

// A Suite is a named list of cases.
type Suite struct {
	Grammar string `yaml:"grammar,omitempty"`
	Cases   []Case `yaml:"cases"`
}

// A Case is an input with its expected outcome.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Want  *bool  `yaml:"want,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// Parse reads a suite from r.
func Parse(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("could not decode suite: %w", err)
	}
	for i, c := range s.Cases {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("case #%d (%s): %w", i+1, c.Name, err)
		}
	}
	return &s, nil
}

// Load reads the suite file at path.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	return s, nil
}

func (c Case) validate() error {
	if c.Want == nil && c.Error == "" {
		return errors.New("neither want nor error is set")
	}
	if c.Want != nil && c.Error != "" {
		return errors.New("both want and error are set")
	}
	if c.Error != "" {
		if _, err := prop.ParseErrorKind(c.Error); err != nil {
			return err
		}
	}
	return nil
}

// A Result is the outcome of a case.
type Result struct {
	Case   Case
	Value  bool  // Computed value, meaningful when Err is nil
	Err    error // Error returned while evaluating the input
	Passed bool
}

// Describe returns a one-line summary of r.
func (r Result) Describe() string {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	var got string
	if r.Err != nil {
		got = "error " + r.Err.Error()
	} else {
		got = fmt.Sprintf("%t", r.Value)
	}
	return fmt.Sprintf("%s %s: %s", status, r.Case.Name, got)
}

// A Report gathers the results of a run, in the order of the cases.
type Report struct {
	ID      uuid.UUID
	Results []Result
	Passed  int
	Failed  int
}

// OK is true iff every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run evaluates every case of s with parse, concurrently.
// Cases that did not start before ctx is done are reported as failed with ctx's error.
func Run(ctx context.Context, s *Suite, parse prop.ParseFunc) *Report {
	rep := &Report{ID: uuid.New(), Results: make([]Result, len(s.Cases))}
	var wg sync.WaitGroup
	for i, c := range s.Cases {
		wg.Add(1)
		go func(i int, c Case) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				rep.Results[i] = Result{Case: c, Err: err}
				return
			}
			rep.Results[i] = runCase(c, parse)
		}(i, c)
	}
	wg.Wait()
	for _, res := range rep.Results {
		if res.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	return rep
}

func runCase(c Case, parse prop.ParseFunc) Result {
	if err := c.validate(); err != nil {
		return Result{Case: c, Err: err}
	}
	val, err := prop.EvalWith(c.Input, parse)
	res := Result{Case: c, Value: val, Err: err}
	switch {
	case c.Error != "":
		kind, _ := prop.ParseErrorKind(c.Error)
		res.Passed = errors.Is(err, kind)
	case err == nil:
		res.Passed = val == *c.Want
	}
	return res
}
