package logicsim_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ls "github.com/db47h/logicsim"
)

func TestParseKind(t *testing.T) {
	for _, k := range ls.Kinds() {
		assert.Equal(t, k, ls.ParseKind(k.String()))
		assert.NotEmpty(t, k.Describe(), k.String())
	}
	assert.Equal(t, ls.And, ls.ParseKind("and"))
	assert.Equal(t, ls.AAndNotB, ls.ParseKind("A_AND_NOT_B"))
	assert.Equal(t, ls.RAM4x4, ls.ParseKind(" ram_4x4 "))
	assert.Equal(t, ls.Unknown, ls.ParseKind("FLUX_CAPACITOR"))
	assert.Equal(t, ls.Unknown, ls.ParseKind(""))
}

func TestKind_text(t *testing.T) {
	var v struct {
		K []ls.Kind
	}
	require.NoError(t, json.Unmarshal([]byte(`{"K":["XOR","D_FLIPFLOP","WARP_CORE"]}`), &v))
	assert.Equal(t, []ls.Kind{ls.Xor, ls.DFlipFlop, ls.Unknown}, v.K)
	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"K":["XOR","D_FLIPFLOP","UNKNOWN"]}`, string(b))
}

func TestKind_classes(t *testing.T) {
	assert.True(t, ls.Battery.CanDriveParallel())
	assert.True(t, ls.MOSFETP.CanDriveParallel())
	assert.False(t, ls.And.CanDriveParallel())
	assert.True(t, ls.Counter4Bit.IsSequential())
	assert.False(t, ls.Xor.IsSequential())
	assert.True(t, ls.Buzzer.IsIndicator())
	assert.True(t, ls.Switch.Toggleable())
	assert.False(t, ls.Clock.Toggleable())
}

// Every kind evaluates without panicking on any input combination.
func TestTruthTable_allKinds(t *testing.T) {
	for _, k := range append(ls.Kinds(), ls.Unknown) {
		ni, no := k.PinCount()
		rows := ls.TruthTable(k)
		require.Len(t, rows, 1<<uint(ni), k.String())
		for _, r := range rows {
			assert.Len(t, r.Out, no)
		}
	}
}
