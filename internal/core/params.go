package core

import (
	"fmt"
	"io"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeList denotes comma-separated lists.
	ParamTypeList ParamType = "list"
)

// Parameter describes a single value the run was configured with.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the effective configuration of a run.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// WriteTo prints the snapshot as an indented list, one group per heading.
func (s ParameterSnapshot) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, g := range s.Groups {
		n, err := fmt.Fprintf(w, "%s\n", g.Name)
		total += int64(n)
		if err != nil {
			return total, err
		}
		for _, p := range g.Params {
			n, err := fmt.Fprintf(w, "  %-14s %s\n", p.Label+":", p.Value)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}
