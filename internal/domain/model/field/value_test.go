package field

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		input   string
		want    Value
		wantErr bool
	}{
		{"text trimmed", KindText, "  Lekki  ", Text("Lekki"), false},
		{"formatted amount", KindAmount, "1,500,000", Amount(1500000), false},
		{"decimal", KindNumber, "2.5", Number(2.5), false},
		{"list split", KindList, "Pool, Gym,,Pool", List("Pool", "Gym"), false},
		{"bool yes", KindBool, "yes", Bool(true), false},
		{"bool no", KindBool, "no", Bool(false), false},
		{"blank amount is empty", KindAmount, "   ", Empty(KindAmount), false},
		{"bad amount", KindAmount, "lots", Value{}, true},
		{"bad bool", KindBool, "maybe", Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.kind, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got.Display(), tt.want.Display())
		})
	}
}

func TestEmptyRepresentations(t *testing.T) {
	for _, kind := range []Kind{KindText, KindAmount, KindNumber, KindList, KindBool} {
		assert.True(t, Empty(kind).IsEmpty(), kind.String())
	}
	assert.True(t, Text("   ").IsEmpty())
	assert.True(t, List().IsEmpty())
	assert.True(t, Bool(false).IsEmpty())
	assert.False(t, Amount(0).IsEmpty(), "an explicit zero amount is an answer")
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(KindAmount, float64(250000))
	require.NoError(t, err)
	assert.Equal(t, int64(250000), v.AmountValue())

	v, err = FromAny(KindList, []any{"C of O", "Survey"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C of O", "Survey"}, v.ListValue())

	v, err = FromAny(KindBool, true)
	require.NoError(t, err)
	assert.True(t, v.BoolValue())

	_, err = FromAny(KindAmount, 12.5)
	assert.Error(t, err)

	_, err = FromAny(KindText, []any{"x"})
	assert.Error(t, err)
}

func TestNonFiniteNumbersRejected(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  any
	}{
		{"text inf", KindNumber, "Inf"},
		{"text infinity", KindNumber, "infinity"},
		{"text overflow", KindNumber, "1e400"},
		{"float inf", KindNumber, math.Inf(1)},
		{"float nan", KindNumber, math.NaN()},
		{"amount overflow", KindAmount, 1e300},
		{"amount inf", KindAmount, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromAny(tt.kind, tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestDisplayFormatsOnlyAtRender(t *testing.T) {
	v := Amount(1500000)
	assert.Equal(t, "1,500,000", v.Display())
	assert.Equal(t, int64(1500000), v.AmountValue())

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `1500000`, string(raw))

	raw, err = json.Marshal(Empty(KindText))
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestDescriptorHelpers(t *testing.T) {
	d := Descriptor{ID: MeasurementType, Options: []string{"plot", "acre"}}
	assert.True(t, d.HasOption("plot"))
	assert.False(t, d.HasOption("hectare"))
	assert.True(t, Descriptor{}.HasOption("anything"))
}
