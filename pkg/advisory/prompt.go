package advisory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PromptInput is the canonical ground truth embedded in the advisory prompt.
// Every structural fact the model is asked to describe is stated here, so a
// well-behaved response has nothing to invent.
type PromptInput struct {
	Component  string   `json:"component"`
	Kind       string   `json:"kind"`
	Family     string   `json:"family"`
	Hierarchy  []string `json:"hierarchy,omitempty"`
	Properties []string `json:"properties"`
	States     []string `json:"states"`
	Tokens     []string `json:"tokens"`
	HardCoded  []string `json:"hardCoded"`
	TokenTotal int      `json:"tokenTotal"`
}

// outputFields documents the expected response schema inside the prompt.
var outputFields = []struct {
	name, typ, desc string
}{
	{"component", "string", "component name, echoed from input"},
	{"description", "string", "one-paragraph semantic description"},
	{"usage", "string", "when and how to use the component"},
	{"accessibility", "string", "accessibility notes"},
	{"props", "array", "properties; must match the input properties exactly"},
	{"states", "array", "interaction states; must match the input states exactly"},
	{"slots", "array", "content slots implied by the structure"},
	{"counts", "object", "tokens/properties/states counts, matching the input"},
	{"readiness", "object", "score 0-100 with strengths, gaps, recommendations"},
}

// BuildPrompt renders the structured advisory prompt. Sections follow a
// fixed order so the prompt itself is deterministic for a given ground
// truth.
func BuildPrompt(in PromptInput) (string, error) {
	if strings.TrimSpace(in.Component) == "" {
		return "", fmt.Errorf("advisory: prompt input missing component name")
	}
	inputJSON, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", fmt.Errorf("advisory: encode prompt input: %w", err)
	}

	var buf bytes.Buffer
	writeSection(&buf, "PURPOSE",
		"Describe a UI design component for design-system documentation. "+
			"The structural facts below are extracted ground truth; do not alter them.")
	writeSection(&buf, "INPUT", string(inputJSON))
	writeSection(&buf, "OUTPUT", formatOutputFields())
	writeSection(&buf, "RULES", strings.Join([]string{
		"- Echo properties, states, and counts exactly as given in INPUT.",
		"- Contribute prose only: description, usage, accessibility, readiness reasoning.",
		"- Gaps and recommendations must be short imperative phrases.",
		"- Do not invent tokens, properties, or states that are not in INPUT.",
	}, "\n"))
	writeSection(&buf, "OUTPUT_FORMAT", "A single JSON object. No prose outside the JSON.")

	return strings.TrimSpace(buf.String()) + "\n", nil
}

func formatOutputFields() string {
	var buf strings.Builder
	for _, f := range outputFields {
		fmt.Fprintf(&buf, "- %s (%s): %s\n", f.name, f.typ, f.desc)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("[")
	buf.WriteString(title)
	buf.WriteString("]\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}
