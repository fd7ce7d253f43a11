package advisory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptFixture() PromptInput {
	return PromptInput{
		Component:  "PrimaryButton",
		Kind:       "component-set",
		Family:     "button",
		Properties: []string{"Variant", "Size"},
		States:     []string{"default", "hover"},
		Tokens:     []string{"brand/primary"},
		HardCoded:  []string{"#3366cc"},
		TokenTotal: 2,
	}
}

func TestBuildPrompt_Sections(t *testing.T) {
	prompt, err := BuildPrompt(promptFixture())
	require.NoError(t, err)

	for _, section := range []string{"[PURPOSE]", "[INPUT]", "[OUTPUT]", "[RULES]", "[OUTPUT_FORMAT]"} {
		assert.Contains(t, prompt, section)
	}
	// Sections appear in fixed order.
	assert.Less(t, strings.Index(prompt, "[PURPOSE]"), strings.Index(prompt, "[INPUT]"))
	assert.Less(t, strings.Index(prompt, "[RULES]"), strings.Index(prompt, "[OUTPUT_FORMAT]"))
}

func TestBuildPrompt_EmbedsGroundTruth(t *testing.T) {
	prompt, err := BuildPrompt(promptFixture())
	require.NoError(t, err)

	assert.Contains(t, prompt, `"PrimaryButton"`)
	assert.Contains(t, prompt, `"brand/primary"`)
	assert.Contains(t, prompt, `"#3366cc"`)
	assert.Contains(t, prompt, `"tokenTotal": 2`)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a, err := BuildPrompt(promptFixture())
	require.NoError(t, err)
	b, err := BuildPrompt(promptFixture())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildPrompt_RequiresComponent(t *testing.T) {
	_, err := BuildPrompt(PromptInput{})
	assert.Error(t, err)
}

// --- Ask ---

// scriptedClient returns a fixed response, recording calls.
type scriptedClient struct {
	response string
	err      error
	calls    int
}

func (s *scriptedClient) GenerateJSON(context.Context, string) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *scriptedClient) Name() string { return "scripted" }

func TestAsk_RoundTrip(t *testing.T) {
	client := &scriptedClient{response: "Here you go:\n" +
		`{"component": "PrimaryButton", "description": "The main CTA."}`}

	c, err := Ask(context.Background(), client, promptFixture())
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "The main CTA.", c.Description)
}

func TestAsk_TransportErrorPropagates(t *testing.T) {
	client := &scriptedClient{err: &ServiceError{Kind: ErrRateLimit, Err: fmt.Errorf("429")}}

	_, err := Ask(context.Background(), client, promptFixture())
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrRateLimit, svcErr.Kind)
}

func TestAsk_MalformedResponse(t *testing.T) {
	client := &scriptedClient{response: "no json here"}

	_, err := Ask(context.Background(), client, promptFixture())
	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestAsk_SchemaDriftFails(t *testing.T) {
	client := &scriptedClient{response: `{"description": "x", "surprise": true}`}
	_, err := Ask(context.Background(), client, promptFixture())
	assert.Error(t, err)
}
