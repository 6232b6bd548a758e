// Package phone formats subscriber numbers under per-country grouping rules.
package phone

import (
	"errors"
	"strings"
)

var ErrUnknownCountry = errors.New("unknown country")

// Country describes one dialing profile. Groups are the fixed space-separated
// digit group sizes; their sum is the country's maximum digit count.
type Country struct {
	Code     string
	DialCode string
	Groups   []int
}

func (c Country) MaxDigits() int {
	total := 0
	for _, g := range c.Groups {
		total += g
	}
	return total
}

// Profiles the dashboard offers in its country selector.
var countries = map[string]Country{
	"PL": {Code: "PL", DialCode: "+48", Groups: []int{3, 3, 3}},
	"US": {Code: "US", DialCode: "+1", Groups: []int{3, 3, 4}},
	"GB": {Code: "GB", DialCode: "+44", Groups: []int{4, 3, 3}},
	"DE": {Code: "DE", DialCode: "+49", Groups: []int{4, 3, 4}},
	"CZ": {Code: "CZ", DialCode: "+420", Groups: []int{3, 3, 3}},
	"UA": {Code: "UA", DialCode: "+380", Groups: []int{2, 3, 2, 2}},
}

func CountryByCode(code string) (Country, error) {
	c, ok := countries[strings.ToUpper(code)]
	if !ok {
		return Country{}, ErrUnknownCountry
	}
	return c, nil
}

// Digits strips every non-digit character.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format normalizes a free-form number under the country's grouping: strips
// non-digits, truncates to the country's maximum, and re-inserts spaces at the
// fixed group positions. A trailing incomplete group is left as-is.
func Format(raw string, country Country) string {
	digits := Digits(raw)
	if max := country.MaxDigits(); len(digits) > max {
		// Extra trailing digits are dropped silently, not rejected.
		digits = digits[:max]
	}

	var groups []string
	for _, size := range country.Groups {
		if len(digits) == 0 {
			break
		}
		if size > len(digits) {
			size = len(digits)
		}
		groups = append(groups, digits[:size])
		digits = digits[size:]
	}
	return strings.Join(groups, " ")
}

// Reformat regroups an already formatted number under a new country. The
// existing digit buffer is kept, not cleared; digits beyond the new country's
// maximum are dropped.
func Reformat(formatted string, newCountry Country) string {
	return Format(formatted, newCountry)
}
