// Package command models the mutation boundary: the analysis core constructs
// and validates document-mutation commands, the host executes them. Every
// command carries the target id plus the desired end state, so re-executing
// one is a no-op.
package command

import (
	"context"
	"fmt"
	"strings"
)

// Result is the typed outcome of executing one command.
type Result struct {
	OK  bool   `json:"ok"`
	Err string `json:"error,omitempty"`
}

// Failure builds a failed result from an error.
func Failure(err error) Result { return Result{Err: err.Error()} }

// Success is the zero-friction OK result.
func Success() Result { return Result{OK: true} }

// Command is one validated document mutation.
type Command interface {
	// Validate checks the command before it ever reaches the host.
	Validate() error
	// Describe renders a short human-readable summary for previews.
	Describe() string
}

// Executor is implemented by the host collaborator that applies commands to
// the live document.
type Executor interface {
	Execute(ctx context.Context, cmd Command) Result
}

// BindToken binds a named token/variable to a style property of an element.
type BindToken struct {
	ElementID string `json:"elementId"`
	Property  string `json:"property"` // fill, stroke, cornerRadius, ...
	TokenName string `json:"tokenName"`
}

func (c BindToken) Validate() error {
	switch {
	case strings.TrimSpace(c.ElementID) == "":
		return fmt.Errorf("bind-token: element id required")
	case strings.TrimSpace(c.Property) == "":
		return fmt.Errorf("bind-token: property required")
	case strings.TrimSpace(c.TokenName) == "":
		return fmt.Errorf("bind-token: token name required")
	}
	return nil
}

func (c BindToken) Describe() string {
	return fmt.Sprintf("bind %s.%s -> %s", c.ElementID, c.Property, c.TokenName)
}

// RenameElement sets an element's layer name.
type RenameElement struct {
	ElementID string `json:"elementId"`
	NewName   string `json:"newName"`
}

func (c RenameElement) Validate() error {
	switch {
	case strings.TrimSpace(c.ElementID) == "":
		return fmt.Errorf("rename: element id required")
	case strings.TrimSpace(c.NewName) == "":
		return fmt.Errorf("rename: new name required")
	}
	return nil
}

func (c RenameElement) Describe() string {
	return fmt.Sprintf("rename %s -> %q", c.ElementID, c.NewName)
}

// AddProperty creates a component property definition.
type AddProperty struct {
	ComponentID string   `json:"componentId"`
	Name        string   `json:"name"`
	Kind        string   `json:"kind"` // variant, text, boolean, slot
	Values      []string `json:"values,omitempty"`
}

var validPropertyKinds = map[string]bool{"variant": true, "text": true, "boolean": true, "slot": true}

func (c AddProperty) Validate() error {
	switch {
	case strings.TrimSpace(c.ComponentID) == "":
		return fmt.Errorf("add-property: component id required")
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("add-property: name required")
	case !validPropertyKinds[c.Kind]:
		return fmt.Errorf("add-property: invalid kind %q", c.Kind)
	case c.Kind == "variant" && len(c.Values) == 0:
		return fmt.Errorf("add-property: variant property needs values")
	}
	return nil
}

func (c AddProperty) Describe() string {
	return fmt.Sprintf("add property %q (%s) to %s", c.Name, c.Kind, c.ComponentID)
}

// ValidateAll validates a batch and returns the first failure, if any.
func ValidateAll(cmds []Command) error {
	for i, c := range cmds {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}
	return nil
}
