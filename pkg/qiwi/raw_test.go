package qiwi

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawInput_Dispatch(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		expectedErr error
	}{
		{name: "Map", input: map[string]any{"id": "RUB", "title": "Рубли"}},
		{name: "Text", input: `{"id":"RUB","title":"Рубли"}`},
		{name: "Bytes", input: []byte(`{"id":"RUB","title":"Рубли"}`)},
		{name: "Raw message", input: json.RawMessage(`{"id":"RUB","title":"Рубли"}`)},
		{name: "Number", input: 42, expectedErr: ErrInvalidInputType},
		{name: "Nil", input: nil, expectedErr: ErrInvalidInputType},
		{name: "Broken json", input: `{"id":`, expectedErr: ErrMalformedResponse},
		{name: "Json array", input: `[1,2]`, expectedErr: ErrMalformedResponse},
		{name: "Trailing data", input: `{"id":"RUB","title":"x"} {}`, expectedErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Raw(tt.input).object("AccountType")
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			typ, err := parseAccountType(o)
			require.NoError(t, err)
			assert.Equal(t, &AccountType{ID: "RUB", Title: "Рубли"}, typ)
		})
	}
}

func TestRawInput_ZeroValue(t *testing.T) {
	_, err := AccountFromJSON(RawInput{})
	assert.ErrorIs(t, err, ErrInvalidInputType)
}

func TestObject_Accessors(t *testing.T) {
	o, err := FromText(`{
		"s": "text",
		"n": 643,
		"ns": "643",
		"f": 12.50,
		"fs": "12.50",
		"b": true,
		"null": null,
		"nested": {"k": "v"},
		"list": [{"k": 1}, 2]
	}`).object("Test")
	require.NoError(t, err)

	s, err := o.str("s")
	require.NoError(t, err)
	assert.Equal(t, "text", s)

	n, err := o.str("n")
	require.NoError(t, err)
	assert.Equal(t, "643", n)

	i, err := o.integer("ns")
	require.NoError(t, err)
	assert.Equal(t, int64(643), i)

	_, err = o.integer("f")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	d, err := o.amount("fs")
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = o.str("null")
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.ErrorContains(t, err, "Test.null: required field is missing")

	opt, err := o.optStr("null")
	require.NoError(t, err)
	assert.Nil(t, opt)

	_, err = o.boolean("s")
	assert.ErrorContains(t, err, "Test.s: expected boolean, got string")

	_, found, err := o.optObj("missing")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = o.objects("list", "Item")
	assert.ErrorContains(t, err, "list[1]: expected object, got number")
}

func TestObject_IntegerRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "Exponent", input: `{"n": 1e3}`, expected: 1000},
		{name: "Whole float", input: `{"n": 643.0}`, expected: 643},
		{name: "Max int64", input: `{"n": 9223372036854775807}`, expected: math.MaxInt64},
		{name: "Too large", input: `{"n": 1e20}`, wantErr: true},
		{name: "Two to the 63rd", input: `{"n": 9223372036854775808}`, wantErr: true},
		{name: "Too small", input: `{"n": -1e20}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := FromText(tt.input).object("Test")
			require.NoError(t, err)
			n, err := o.integer("n")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedResponse)
				assert.ErrorContains(t, err, "Test.n: expected integer")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestDecodeDate(t *testing.T) {
	msk := time.FixedZone("", 3*60*60)
	tests := []struct {
		name     string
		input    string
		expected time.Time
		offset   int
		wantErr  bool
	}{
		{
			name:     "Offset is preserved",
			input:    "2018-04-02T23:11:04+03:00",
			expected: time.Date(2018, 4, 2, 23, 11, 4, 0, msk),
			offset:   3 * 60 * 60,
		},
		{
			name:     "Zulu",
			input:    "2018-04-02T20:11:04Z",
			expected: time.Date(2018, 4, 2, 20, 11, 4, 0, time.UTC),
		},
		{
			name:     "Fractional seconds",
			input:    "2018-04-02T23:11:04.512+03:00",
			expected: time.Date(2018, 4, 2, 23, 11, 4, 512000000, msk),
			offset:   3 * 60 * 60,
		},
		{
			name:     "Offset without colon",
			input:    "2018-04-02T23:11:04+0300",
			expected: time.Date(2018, 4, 2, 23, 11, 4, 0, msk),
			offset:   3 * 60 * 60,
		},
		{
			name:     "Without offset is UTC",
			input:    "2018-04-02T23:11:04",
			expected: time.Date(2018, 4, 2, 23, 11, 4, 0, time.UTC),
		},
		{
			name:    "Garbage",
			input:   "02.04.2018",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got))
			_, offset := got.Zone()
			assert.Equal(t, tt.offset, offset)
		})
	}
}
