// Package operator implements the search pipeline: named search steps
// dispatched by string key. Each operator validates its own parameters,
// calls out to the database or the AI services, and returns a preview slice
// plus the total result count.
package operator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

// Params carries operator-specific parameters as decoded from the request
// body. Accessors apply defaults for missing or mistyped values.
type Params map[string]interface{}

func (p Params) String(key string) string {
	if v, ok := p[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func (p Params) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func (p Params) Strings(key string) []string {
	raw, ok := p[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Result is what an operator hands back: at most the preview count of
// hydrated items, plus the total match count for the result badge.
type Result struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// Item is one artwork formatted for display.
type Item struct {
	Inventory  string  `json:"inventory"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Year       string  `json:"year"`
	ImageURL   string  `json:"image_url"`
	Similarity float64 `json:"similarity,omitempty"`
}

// ParamSpec describes one operator parameter for the frontend config panel.
type ParamSpec struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Default  any      `json:"default,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// Descriptor is the registry metadata for an operator.
type Descriptor struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	Params      []ParamSpec `json:"params"`
}

// UnconfiguredMessage is shown when an operator is executed without its
// required parameters.
func (d Descriptor) UnconfiguredMessage() string {
	return fmt.Sprintf("Please configure the %s first", d.Name)
}

type Operator interface {
	Descriptor() Descriptor
	// Configured reports whether the minimum required parameters are set.
	Configured(p Params) bool
	Execute(ctx context.Context, p Params) (*Result, error)
}

// NotConfiguredError reports an execution attempt on an operator whose
// required parameters are missing. Its message names the operator so the
// frontend can show it verbatim.
type NotConfiguredError struct {
	Descriptor Descriptor
}

func (e *NotConfiguredError) Error() string {
	return e.Descriptor.UnconfiguredMessage()
}

// Registry maps operator keys to implementations.
type Registry struct {
	operators map[string]Operator
}

func NewRegistry() *Registry {
	return &Registry{operators: make(map[string]Operator)}
}

func (r *Registry) Register(op Operator) {
	r.operators[op.Descriptor().Key] = op
}

func (r *Registry) Get(key string) (Operator, error) {
	op, ok := r.operators[key]
	if !ok {
		return nil, domain.ErrUnknownOperator
	}
	return op, nil
}

// Describe returns the descriptors of all registered operators, sorted by key.
func (r *Registry) Describe() []Descriptor {
	out := make([]Descriptor, 0, len(r.operators))
	for _, op := range r.operators {
		out = append(out, op.Descriptor())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Result modes shared by the vector search operators.
const (
	ModeTopN            = "top_n"
	ModeLastN           = "last_n"
	ModeSimilarityRange = "similarity_range"
)

// applyResultMode narrows ranked matches according to the result_mode
// parameter. top_n keeps the best n, last_n the worst n (useful to inspect
// the boundary of a label), similarity_range keeps matches inside
// [similarity_min, similarity_max].
func applyResultMode(matches []domain.SemanticMatch, p Params) []domain.SemanticMatch {
	switch p.String("result_mode") {
	case ModeLastN:
		n := p.Int("n_results", 100)
		if len(matches) > n {
			return matches[len(matches)-n:]
		}
		return matches
	case ModeSimilarityRange:
		min := p.Float("similarity_min", 0.0)
		max := p.Float("similarity_max", 1.0)
		filtered := make([]domain.SemanticMatch, 0, len(matches))
		for _, m := range matches {
			if m.Similarity >= min && m.Similarity <= max {
				filtered = append(filtered, m)
			}
		}
		return filtered
	default: // top_n
		n := p.Int("n_results", 100)
		if len(matches) > n {
			return matches[:n]
		}
		return matches
	}
}

var resultModeParams = []ParamSpec{
	{Name: "result_mode", Type: "select", Label: "Result mode", Default: ModeTopN,
		Options: []string{ModeTopN, ModeLastN, ModeSimilarityRange}},
	{Name: "n_results", Type: "int", Label: "Number of results", Default: 100},
	{Name: "similarity_min", Type: "float", Label: "Minimum similarity", Default: 0.0},
	{Name: "similarity_max", Type: "float", Label: "Maximum similarity", Default: 1.0},
}
