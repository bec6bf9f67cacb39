package tabooladomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/taboola-extractor/internal/domain"
)

func TestRawRecordRequireInt(t *testing.T) {
	record := RawRecord{
		"id_numerico": float64(42),
		"id_textual":  "42",
		"id_nulo":     nil,
		"id_invalido": "quarenta e dois",
	}

	value, err := record.RequireInt("id_numerico")
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	value, err = record.RequireInt("id_textual")
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	_, err = record.RequireInt("inexistente")
	assert.ErrorIs(t, err, domain.ErrParse)

	_, err = record.RequireInt("id_nulo")
	assert.ErrorIs(t, err, domain.ErrParse)

	_, err = record.RequireInt("id_invalido")
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestRawRecordOptionalDefaults(t *testing.T) {
	record := RawRecord{}

	intValue, err := record.Int("impressions")
	require.NoError(t, err)
	assert.Equal(t, 0, intValue)

	floatValue, err := record.Float("ctr")
	require.NoError(t, err)
	assert.Equal(t, 0.0, floatValue)

	stringValue, err := record.String("currency")
	require.NoError(t, err)
	assert.Equal(t, "", stringValue)

	boolValue, err := record.Bool("is_active")
	require.NoError(t, err)
	assert.False(t, boolValue)

	withDefault, err := record.StringOr("start_date", domain.OpenEndedDate)
	require.NoError(t, err)
	assert.Equal(t, domain.OpenEndedDate, withDefault)
}

func TestRawRecordWrongTypeIsFatal(t *testing.T) {
	tests := []struct {
		name   string
		record RawRecord
		read   func(record RawRecord) error
	}{
		{
			name:   "inteiro presente como booleano",
			record: RawRecord{"impressions": true},
			read: func(record RawRecord) error {
				_, err := record.Int("impressions")
				return err
			},
		},
		{
			name:   "inteiro presente como nulo",
			record: RawRecord{"impressions": nil},
			read: func(record RawRecord) error {
				_, err := record.Int("impressions")
				return err
			},
		},
		{
			name:   "decimal presente como objeto",
			record: RawRecord{"spent": map[string]any{}},
			read: func(record RawRecord) error {
				_, err := record.Float("spent")
				return err
			},
		},
		{
			name:   "decimal presente como texto não numérico",
			record: RawRecord{"spent": "muito"},
			read: func(record RawRecord) error {
				_, err := record.Float("spent")
				return err
			},
		},
		{
			name:   "texto presente como número",
			record: RawRecord{"currency": float64(986)},
			read: func(record RawRecord) error {
				_, err := record.String("currency")
				return err
			},
		},
		{
			name:   "booleano presente como texto",
			record: RawRecord{"is_active": "true"},
			read: func(record RawRecord) error {
				_, err := record.Bool("is_active")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(tt.record)
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestRawRecordNumericStrings(t *testing.T) {
	record := RawRecord{
		"spent":  "3.5",
		"clicks": "17",
	}

	floatValue, err := record.Float("spent")
	require.NoError(t, err)
	assert.Equal(t, 3.5, floatValue)

	intValue, err := record.Int("clicks")
	require.NoError(t, err)
	assert.Equal(t, 17, intValue)
}
