package errors

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorEnvelopeConstructorsRoundTrip exercises each of the finder's
// well-known error constructors and checks that the resulting envelope
// survives a JSON round trip with its Kind intact.
func TestErrorEnvelopeConstructorsRoundTrip(t *testing.T) {
	cause := assert.AnError

	envelopes := map[Kind]*ErrorEnvelope{
		KindUntrainedTokenizer:         NewUntrainedTokenizerError("subword"),
		KindIncompatibleInput:          NewIncompatibleInputError("\xff\xfe", cause),
		KindInvalidCorpusFile:          NewInvalidCorpusFileError("/tmp/corpus.jsonl", cause),
		KindInvalidNormalizer:          NewInvalidNormalizerError("unknown stage \"reverse\""),
		KindInternalInvariantViolation: NewInternalInvariantViolationError("posting list references unknown token id"),
	}

	for kind, envelope := range envelopes {
		t.Run(string(kind), func(t *testing.T) {
			require.Equal(t, kind, envelope.Kind)
			assert.NotEmpty(t, envelope.Code)
			assert.NotEmpty(t, envelope.Message)
			assert.NotEmpty(t, envelope.Timestamp)

			_, err := time.Parse(time.RFC3339, envelope.Timestamp)
			assert.NoError(t, err, "Timestamp should be valid RFC3339")

			marshaled, err := json.Marshal(envelope)
			require.NoError(t, err)

			var decoded ErrorEnvelope
			require.NoError(t, json.Unmarshal(marshaled, &decoded))
			assert.Equal(t, kind, decoded.Kind)
			assert.Equal(t, envelope.Code, decoded.Code)

			assert.True(t, Is(envelope, kind))
			gotKind, ok := KindOf(envelope)
			assert.True(t, ok)
			assert.Equal(t, kind, gotKind)
		})
	}
}
