package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distress-intel/client-go/internal/models"
)

func TestFallbackEnvelope(t *testing.T) {
	for _, kind := range models.Kinds() {
		res := Fallback(kind)
		require.NotNil(t, res)
		assert.Equal(t, kind, res.Kind())
		m := res.Common()
		assert.True(t, m.IsEmpty)
		assert.True(t, m.Error)
		assert.Equal(t, "Error", m.DataQuality)
		assert.NotEmpty(t, m.LastUpdated)
	}
}

// Consumers must never have to branch on success vs fallback, so the fallback
// has to serialize with exactly the keys a processed result has.
func TestFallbackKeySetMatchesProcessor(t *testing.T) {
	for _, kind := range models.Kinds() {
		processed := keys(t, Process([]byte(`{}`), kind))
		fallback := keys(t, Fallback(kind))
		assert.Equal(t, processed, fallback, "kind %s", kind)
	}
}

func keys(t *testing.T, res models.Result) map[string]bool {
	t.Helper()
	b, err := json.Marshal(res)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	out := make(map[string]bool, len(decoded))
	for k := range decoded {
		out[k] = true
	}
	return out
}
