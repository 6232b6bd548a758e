//go:build unit

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCountry(t *testing.T, code string) Country {
	t.Helper()
	c, err := CountryByCode(code)
	require.NoError(t, err)
	return c
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "600123456", Digits("600 123 456"))
	assert.Equal(t, "48600123456", Digits("+48 (600) 123-456"))
	assert.Equal(t, "", Digits("abc"))
}

func TestFormatPolishGrouping(t *testing.T) {
	pl := mustCountry(t, "PL")

	assert.Equal(t, "600 123 456", Format("600123456", pl))
	assert.Equal(t, "600 123 456", Format("600-123-456", pl))
	// Partial input keeps complete groups plus the remainder
	assert.Equal(t, "600 12", Format("60012", pl))
	assert.Equal(t, "", Format("", pl))
}

func TestFormatTruncatesBeyondMax(t *testing.T) {
	pl := mustCountry(t, "PL")
	// 11 digits into a 9-digit profile: trailing digits dropped silently
	assert.Equal(t, "600 123 456", Format("60012345678", pl))
}

func TestReformatOnCountryChange(t *testing.T) {
	pl := mustCountry(t, "PL")
	us := mustCountry(t, "US")
	gb := mustCountry(t, "GB")
	ua := mustCountry(t, "UA")

	formatted := Format("600123456", pl)
	require.Equal(t, "600 123 456", formatted)

	// +1 groups 3-3-4; with only 9 digits the last group is short, so the
	// rendering happens to coincide with the Polish one
	assert.Equal(t, "600 123 456", Reformat(formatted, us))

	// +44 regroups 4-3-3
	assert.Equal(t, "6001 234 56", Reformat(formatted, gb))

	// 10 digits under +1 fill the full 3-3-4 shape
	assert.Equal(t, "600 123 4567", Format("6001234567", us))

	// Switching to a 9-digit profile drops the trailing digit only
	assert.Equal(t, "600 123 456", Reformat("600 123 4567", pl))

	// A shorter multi-group profile keeps leading digits
	assert.Equal(t, "60 012 34 56", Reformat(formatted, ua))
}

func TestCountryByCode(t *testing.T) {
	c, err := CountryByCode("pl")
	require.NoError(t, err)
	assert.Equal(t, "+48", c.DialCode)
	assert.Equal(t, 9, c.MaxDigits())

	_, err = CountryByCode("XX")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}
