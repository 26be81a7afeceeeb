package sim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_String(t *testing.T) {
	want := []string{"Ready", "Launch", "CoastUp", "ZeroG", "Reentry", "Parachute", "Landed"}
	for i, name := range want {
		assert.Equal(t, name, Phase(i).String())
	}
	assert.Equal(t, "Phase(42)", Phase(42).String())
}

func TestPhase_Active(t *testing.T) {
	assert.False(t, Ready.Active())
	assert.False(t, Landed.Active())
	for _, p := range []Phase{Launch, CoastUp, ZeroG, Reentry, Parachute} {
		assert.True(t, p.Active(), p.String())
	}
}

func TestPhase_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		P Phase `json:"p"`
	}{P: Parachute})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":"Parachute"}`, string(b))

	var out struct {
		P Phase `json:"p"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"p":"ZeroG"}`), &out))
	assert.Equal(t, ZeroG, out.P)

	assert.Error(t, json.Unmarshal([]byte(`{"p":"Orbit"}`), &out))

	_, err = Phase(-1).MarshalText()
	assert.Error(t, err)
}

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase("Reentry")
	require.NoError(t, err)
	assert.Equal(t, Reentry, p)

	_, err = ParsePhase("reentry")
	assert.Error(t, err)
}
