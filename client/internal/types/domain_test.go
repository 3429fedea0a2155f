package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationHeader(t *testing.T) {
	t.Parallel()
	h, err := NewLocation(52.52, 13.405).Header()
	require.NoError(t, err)

	var got map[string]float64
	require.NoError(t, json.Unmarshal([]byte(h), &got))
	assert.Equal(t, 52.52, got["latitude"])
	assert.Equal(t, 13.405, got["longitude"])
	assert.Equal(t, float64(DefaultAltitude), got["altitude"])
	assert.Equal(t, float64(DefaultAccuracy), got["accuracy"])
	assert.Equal(t, float64(DefaultSpeed), got["speed"])
	assert.Equal(t, float64(DefaultHeading), got["heading"])
}

func TestFloat64String(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{`1.5`, 1.5, true}, {`"2.25"`, 2.25, true}, {`""`, 0, true}, {`null`, 0, true},
		{`"abc"`, 0, false}, {`true`, 0, false},
	}
	for _, c := range cases {
		var f Float64String
		err := json.Unmarshal([]byte(c.in), &f)
		if !c.ok {
			assert.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, f.Float64(), c.in)
	}
}

func TestDecodeVehicles(t *testing.T) {
	t.Parallel()
	arr := json.RawMessage(`[{"id":"a","location":{"latitude":"1.5","longitude":2},"battery_level":80}]`)
	vs, err := DecodeVehicles(arr)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "a", vs[0].ID)
	assert.Equal(t, 1.5, vs[0].Location.Latitude.Float64())
	assert.Equal(t, 80.0, vs[0].BatteryLevel.Float64())

	obj := json.RawMessage(` {"birds":[{"id":"b"},{"id":"c"}]}`)
	vs, err = DecodeVehicles(obj)
	require.NoError(t, err)
	assert.Len(t, vs, 2)

	_, err = DecodeVehicles(json.RawMessage(`  `))
	assert.Error(t, err)
	_, err = DecodeVehicles(json.RawMessage(`{bad`))
	assert.Error(t, err)
}
