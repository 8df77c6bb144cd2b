package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/recommend"
	"github.com/vetfinder-hk/vetfinder/internal/store"
)

func sampleRecs(n int) []recommend.RecommendedVet {
	recs := make([]recommend.RecommendedVet, n)
	for i := range recs {
		recs[i] = recommend.RecommendedVet{
			VetRecord: store.VetRecord{Name: "Dr. CHAN Tai Man 陳大文"},
			Reason:    "Name match",
		}
	}
	return recs
}

func TestResponder_Respond_ProviderReplyUsedVerbatim(t *testing.T) {
	fake := &fakeCompleter{responses: []string{"Your cat may be dehydrated. **URGENT**: visit a clinic now."}}
	r := NewResponder(fake, observability.Nop())

	text := r.Respond(context.Background(), "my cat is vomiting", sampleRecs(2), "en", "cat")

	assert.Equal(t, "Your cat may be dehydrated. **URGENT**: visit a clinic now.", text)
	require.Len(t, fake.systems, 1)
	assert.Contains(t, fake.systems[0], "We found 2 veterinarian matches")
	assert.Contains(t, fake.systems[0], "Respond in English.")
}

func TestResponder_Respond_InstructionLanguageTC(t *testing.T) {
	fake := &fakeCompleter{responses: []string{"好的"}}
	r := NewResponder(fake, observability.Nop())

	r.Respond(context.Background(), "我隻貓嘔吐", sampleRecs(1), "tc", "cat")

	require.Len(t, fake.systems, 1)
	assert.Contains(t, fake.systems[0], "Respond in Traditional Chinese.")
}

func TestResponder_Respond_ProviderErrorFallsBack(t *testing.T) {
	r := NewResponder(&fakeCompleter{err: errors.New("rate limited")}, observability.Nop())

	text := r.Respond(context.Background(), "my dog has a limp", sampleRecs(3), "en", "dog")

	assert.Equal(t, "Based on your description, I found 3 vets. Here are the recommendations for your dog:", text)
}

func TestResponder_Respond_EmptyProviderReplyFallsBack(t *testing.T) {
	r := NewResponder(&fakeCompleter{responses: []string{""}}, observability.Nop())

	text := r.Respond(context.Background(), "my dog has a limp", sampleRecs(1), "en", "dog")

	assert.Equal(t, "Based on your description, I found 1 vets. Here are the recommendations for your dog:", text)
}

func TestResponder_Respond_NoProviderFallbacks(t *testing.T) {
	r := NewResponder(nil, observability.Nop())
	ctx := context.Background()

	tests := []struct {
		name     string
		matches  int
		language string
		petType  string
		want     string
	}{
		{
			name:     "english no matches",
			matches:  0,
			language: "en",
			petType:  "cat",
			want:     "I couldn't identify specific needs. Try describing symptoms or a district.",
		},
		{
			name:     "english with matches",
			matches:  4,
			language: "en",
			petType:  "cat",
			want:     "Based on your description, I found 4 vets. Here are the recommendations for your cat:",
		},
		{
			name:     "english unknown pet defaults",
			matches:  2,
			language: "en",
			petType:  "",
			want:     "Based on your description, I found 2 vets. Here are the recommendations for your pet:",
		},
		{
			name:     "chinese no matches",
			matches:  0,
			language: "tc",
			petType:  "dog",
			want:     "我目前無法識別具體需求，您可以嘗試描述症狀或地區。",
		},
		{
			name:     "chinese with matches dog",
			matches:  5,
			language: "tc",
			petType:  "dog",
			want:     "根據您的描述，我為您找到了 5 位獸醫。以下是為您的狗狗推薦的結果：",
		},
		{
			name:     "chinese with matches other pet",
			matches:  1,
			language: "tc",
			petType:  "rabbit",
			want:     "根據您的描述，我為您找到了 1 位獸醫。以下是為您的寵物推薦的結果：",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Respond(ctx, "hello", sampleRecs(tt.matches), tt.language, tt.petType))
		})
	}
}
