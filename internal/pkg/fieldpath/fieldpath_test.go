//go:build unit

package fieldpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() Node {
	return Node{
		Message: "validation failed",
		Fields: map[string]Node{
			"schedule": {
				Fields: map[string]Node{
					"startDateTime": {Message: "must not be in the past"},
					"endDateTime":   {Message: "must be after startDateTime"},
				},
			},
			"status": {Message: "unknown status"},
		},
	}
}

func TestLookup(t *testing.T) {
	n := sampleTree()

	msg, ok := n.Lookup("schedule.startDateTime")
	require.True(t, ok)
	assert.Equal(t, "must not be in the past", msg)

	msg, ok = n.Lookup("status")
	require.True(t, ok)
	assert.Equal(t, "unknown status", msg)

	// Intermediate node without its own message
	_, ok = n.Lookup("schedule")
	assert.False(t, ok)

	_, ok = n.Lookup("schedule.missing")
	assert.False(t, ok)

	_, ok = n.Lookup("schedule.startDateTime.extra")
	assert.False(t, ok)

	msg, ok = n.Lookup("")
	require.True(t, ok)
	assert.Equal(t, "validation failed", msg)
}

func TestDecodeAndFlatten(t *testing.T) {
	payload := []byte(`{
		"message": "validation failed",
		"fields": {
			"schedule": {
				"fields": {
					"startDateTime": {"message": "must not be in the past"}
				}
			}
		}
	}`)

	n, err := Decode(payload)
	require.NoError(t, err)

	want := map[string]string{
		"":                       "validation failed",
		"schedule.startDateTime": "must not be in the past",
	}
	if diff := cmp.Diff(want, n.Flatten()); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{`))
	assert.Error(t, err)
}
