package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
)

// fakeCompleter replays queued completions, or a fixed error.
type fakeCompleter struct {
	responses []string
	err       error
	prompts   []string
	systems   []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt, systemInstruction string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.systems = append(f.systems, systemInstruction)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeCompleter) Provider() Provider {
	return Provider("fake")
}

func TestIntentExtractor_Extract_NoProvider(t *testing.T) {
	e := NewIntentExtractor(nil, observability.Nop())

	assert.Nil(t, e.Extract(context.Background(), "my cat is vomiting", "en"))
}

func TestIntentExtractor_Extract_ProviderError(t *testing.T) {
	e := NewIntentExtractor(&fakeCompleter{err: errors.New("boom")}, observability.Nop())

	assert.Nil(t, e.Extract(context.Background(), "my cat is vomiting", "en"))
}

func TestIntentExtractor_Extract_NoJSON(t *testing.T) {
	e := NewIntentExtractor(&fakeCompleter{responses: []string{"sorry, I cannot help with that"}}, observability.Nop())

	assert.Nil(t, e.Extract(context.Background(), "my cat is vomiting", "en"))
}

func TestIntentExtractor_Extract_MalformedJSON(t *testing.T) {
	e := NewIntentExtractor(&fakeCompleter{responses: []string{`{"district": `}}, observability.Nop())

	assert.Nil(t, e.Extract(context.Background(), "my cat is vomiting", "en"))
}

func TestIntentExtractor_Extract_EmptyOutput(t *testing.T) {
	e := NewIntentExtractor(&fakeCompleter{responses: []string{""}}, observability.Nop())

	assert.Nil(t, e.Extract(context.Background(), "my cat is vomiting", "en"))
}

func TestIntentExtractor_Extract_PlainJSON(t *testing.T) {
	completion := `{"district": "Central", "symptoms": "vomiting", "petType": "cat", "isEmergency": true, "language": "en"}`
	e := NewIntentExtractor(&fakeCompleter{responses: []string{completion}}, observability.Nop())

	intent := e.Extract(context.Background(), "My cat is vomiting in Central", "en")
	require.NotNil(t, intent)
	assert.Equal(t, "Central", intent.District)
	assert.Equal(t, "vomiting", intent.Symptoms)
	assert.Equal(t, "cat", intent.PetType)
	require.NotNil(t, intent.IsEmergency)
	assert.True(t, *intent.IsEmergency)
	assert.Equal(t, "en", intent.Language)
}

func TestIntentExtractor_Extract_JSONInMarkdownFence(t *testing.T) {
	completion := "Here is the extracted intent:\n```json\n{\"district\": \"Shatin\", \"petType\": \"dog\"}\n```\nLet me know if you need anything else."
	e := NewIntentExtractor(&fakeCompleter{responses: []string{completion}}, observability.Nop())

	intent := e.Extract(context.Background(), "looking for a vet in Shatin for my dog", "tc")
	require.NotNil(t, intent)
	assert.Equal(t, "Shatin", intent.District)
	assert.Equal(t, "dog", intent.PetType)
	// Missing language falls back to the request language.
	assert.Equal(t, "tc", intent.Language)
	assert.Nil(t, intent.IsEmergency)
}

func TestIntentExtractor_Extract_SendsMessageAndInstruction(t *testing.T) {
	fake := &fakeCompleter{responses: []string{`{"petType": "cat"}`}}
	e := NewIntentExtractor(fake, observability.Nop())

	e.Extract(context.Background(), "my cat sneezes", "en")

	require.Len(t, fake.prompts, 1)
	assert.Equal(t, "my cat sneezes", fake.prompts[0])
	assert.Contains(t, fake.systems[0], "Extract the user's intent")
	assert.Contains(t, fake.systems[0], `"my cat sneezes"`)
}
