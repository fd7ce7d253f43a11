// Package reconcile merges non-deterministic advisory output with ground
// truth extracted from the element tree, corrects mismatches
// deterministically, and recommends missing component properties.
package reconcile

import (
	"sort"
	"strings"

	"github.com/uiforge/designaudit/pkg/design"
	"github.com/uiforge/designaudit/pkg/naming"
	"github.com/uiforge/designaudit/pkg/token"
)

// Family is the component family inferred from name keywords; it selects the
// property catalog and the interactivity expectations.
type Family string

const (
	FamilyAvatar  Family = "avatar"
	FamilyButton  Family = "button"
	FamilyInput   Family = "input"
	FamilyCard    Family = "card"
	FamilyBadge   Family = "badge"
	FamilyIcon    Family = "icon"
	FamilyGeneric Family = "generic"
)

// familyKeywords is consulted in order; first match wins.
var familyKeywords = []struct {
	keyword string
	family  Family
}{
	{"avatar", FamilyAvatar},
	{"button", FamilyButton},
	{"btn", FamilyButton},
	{"input", FamilyInput},
	{"field", FamilyInput},
	{"textbox", FamilyInput},
	{"card", FamilyCard},
	{"badge", FamilyBadge},
	{"chip", FamilyBadge},
	{"tag", FamilyBadge},
	{"icon", FamilyIcon},
}

// InferFamily maps a component name to its family.
func InferFamily(name string) Family {
	lower := strings.ToLower(name)
	for _, entry := range familyKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.family
		}
	}
	return FamilyGeneric
}

// Interactive reports whether the family is expected to expose interaction
// states (hover, focus, pressed and so on).
func (f Family) Interactive() bool {
	switch f {
	case FamilyButton, FamilyInput:
		return true
	default:
		return false
	}
}

// Property is one component property with its known values.
type Property struct {
	Name   string   `json:"name"`
	Values []string `json:"values,omitempty"`
}

// GroundTruth is everything reconciliation trusts unconditionally: facts
// extracted directly from the element tree plus the authoritative token
// summary.
type GroundTruth struct {
	Component  string            `json:"component"`
	Kind       design.Kind       `json:"kind"`
	Family     Family            `json:"family"`
	Properties []Property        `json:"properties"`
	States     []string          `json:"states"`
	Extraction *token.Extraction `json:"extraction"`
	Summary    token.Summary     `json:"summary"`
}

// stateAxes are the variant-axis names that contribute interaction states.
var stateAxes = map[string]bool{"state": true, "status": true, "interaction": true}

// BuildGroundTruth derives properties and states from the element tree and
// pairs them with the finalized extraction. For component sets, variant
// children named "Axis=Value, Axis=Value" define the property axes; a
// state-like axis contributes the state list. Components with no state axis
// get the single "default" state.
func BuildGroundTruth(el *design.Element, ext *token.Extraction, sum token.Summary) GroundTruth {
	gt := GroundTruth{
		Component:  el.Name,
		Kind:       el.Kind,
		Family:     InferFamily(el.Name),
		Extraction: ext,
		Summary:    sum,
	}

	if el.Kind == design.KindComponentSet {
		gt.Properties, gt.States = variantAxes(el)
	}
	if len(gt.States) == 0 {
		gt.States = []string{"default"}
	}
	return gt
}

// variantAxes parses component-set variant names into property axes and the
// state list. Axis order follows first appearance; values are sorted for
// deterministic output.
func variantAxes(set *design.Element) ([]Property, []string) {
	axisOrder := make([]string, 0, 4)
	axisValues := make(map[string]map[string]bool)

	for _, child := range set.Children {
		if child == nil || child.Kind != design.KindComponent {
			continue
		}
		for _, pair := range strings.Split(child.Name, ",") {
			key, value, ok := strings.Cut(pair, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if key == "" || value == "" {
				continue
			}
			if _, seen := axisValues[key]; !seen {
				axisValues[key] = make(map[string]bool)
				axisOrder = append(axisOrder, key)
			}
			axisValues[key][value] = true
		}
	}

	var props []Property
	var states []string
	for _, axis := range axisOrder {
		values := make([]string, 0, len(axisValues[axis]))
		for v := range axisValues[axis] {
			values = append(values, v)
		}
		sort.Strings(values)

		if stateAxes[strings.ToLower(axis)] {
			for _, v := range values {
				states = append(states, strings.ToLower(v))
			}
		}
		props = append(props, Property{Name: axis, Values: values})
	}
	return props, states
}

// Audit carries the structural quality facts attached to the reconciled
// output: the authoritative token summary and the naming issues found in the
// component's subtree.
type Audit struct {
	TokenSummary token.Summary  `json:"tokenSummary"`
	NamingIssues []naming.Issue `json:"namingIssues,omitempty"`
}

// Readiness is the heuristic 0-100 code-generation readiness assessment.
type Readiness struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths,omitempty"`
	Gaps            []string `json:"gaps,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Metadata is the reconciled analysis result. The caller owns it after
// return; the engine keeps no reference.
type Metadata struct {
	Component     string              `json:"component"`
	Description   string              `json:"description"`
	Usage         string              `json:"usage,omitempty"`
	Accessibility string              `json:"accessibility,omitempty"`
	Props         []Property          `json:"props"`
	States        []string            `json:"states"`
	Slots         []string            `json:"slots,omitempty"`
	Variants      map[string][]string `json:"variants,omitempty"`
	Tokens        *token.Extraction   `json:"tokens"`
	Audit         Audit               `json:"audit"`
	Readiness     Readiness           `json:"readiness"`
}
