// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generator

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/dacolabs/dcgen/internal/plan"
)

type kindFunc func(*Generator, constraints) (any, error)

var kinds map[plan.GeneratorKind]kindFunc

func init() {
	kinds = map[plan.GeneratorKind]kindFunc{
		plan.KindUUID4:         (*Generator).genUUID4,
		plan.KindTimestamp:     (*Generator).genTimestamp,
		plan.KindDate:          (*Generator).genDate,
		plan.KindEnumChoice:    (*Generator).genEnumChoice,
		plan.KindIntRange:      (*Generator).genIntRange,
		plan.KindNumericRange:  (*Generator).genNumericRange,
		plan.KindEmail:         (*Generator).genEmail,
		plan.KindPhone:         (*Generator).genPhone,
		plan.KindString:        (*Generator).genString,
		plan.KindStringPattern: (*Generator).genStringPattern,
		plan.KindCountry:       (*Generator).genCountry,
		plan.KindCity:          (*Generator).genCity,
		plan.KindLatLong:       (*Generator).genLatLong,
		plan.KindFixedValue:    (*Generator).genFixedValue,
		plan.KindBoolean:       (*Generator).genBoolean,
		plan.KindFirstName:     (*Generator).genFirstName,
		plan.KindLastName:      (*Generator).genLastName,
		plan.KindFullName:      (*Generator).genFullName,
		plan.KindAddress:       (*Generator).genAddress,
		plan.KindCompany:       (*Generator).genCompany,
		plan.KindURL:           (*Generator).genURL,
		plan.KindCurrency:      (*Generator).genCurrency,
	}
}

const (
	timestampLayout = "2006-01-02T15:04:05.000Z"
	dateLayout      = "2006-01-02"
)

func (g *Generator) genUUID4(constraints) (any, error) {
	id, err := uuid.NewRandomFromReader(randReader{g.rng})
	if err != nil {
		return nil, err
	}
	return id.String(), nil
}

func (g *Generator) genTimestamp(c constraints) (any, error) {
	daysBack, err := c.intAt("days_back", plan.DefaultDaysBack)
	if err != nil {
		return nil, err
	}
	days := g.between(0, max(daysBack, 0))
	offset := time.Duration(g.between(0, 23))*time.Hour +
		time.Duration(g.between(0, 59))*time.Minute +
		time.Duration(g.between(0, 59))*time.Second
	return g.now().UTC().AddDate(0, 0, -days).Add(-offset).Format(timestampLayout), nil
}

func (g *Generator) genDate(c constraints) (any, error) {
	daysBack, err := c.intAt("days_back", plan.DefaultDateDaysBack)
	if err != nil {
		return nil, err
	}
	daysForward, err := c.intAt("days_forward", plan.DefaultDaysForward)
	if err != nil {
		return nil, err
	}
	lo, hi := -daysBack, daysForward
	if lo > hi {
		lo, hi = hi, lo
	}
	today := g.now().UTC()
	return today.AddDate(0, 0, g.between(lo, hi)).Format(dateLayout), nil
}

func (g *Generator) genEnumChoice(c constraints) (any, error) {
	choices := c.list("choices")
	if len(choices) == 0 {
		return nil, nil
	}
	return choices[g.rng.IntN(len(choices))], nil
}

func (g *Generator) genIntRange(c constraints) (any, error) {
	lo, hi, err := c.intRange(plan.DefaultIntMin, plan.DefaultIntMax)
	if err != nil {
		return nil, err
	}
	return g.between(lo, hi), nil
}

func (g *Generator) genNumericRange(c constraints) (any, error) {
	lo, hi, err := c.floatRange(plan.DefaultFloatMin, plan.DefaultFloatMax)
	if err != nil {
		return nil, err
	}
	precision, err := c.intAt("precision", plan.DefaultPrecision)
	if err != nil {
		return nil, err
	}
	return round(g.uniform(lo, hi), precision), nil
}

func (g *Generator) genEmail(c constraints) (any, error) {
	domain, err := c.stringAt("domain", "")
	if err != nil {
		return nil, err
	}
	if domain != "" {
		return g.faker.Username() + "@" + domain, nil
	}
	return g.faker.Email(), nil
}

func (g *Generator) genPhone(c constraints) (any, error) {
	code, err := c.stringAt("country_code", "1")
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString("+")
	sb.WriteString(code)
	for range 10 {
		sb.WriteByte(byte('0' + g.rng.IntN(10)))
	}
	return sb.String(), nil
}

// genString produces word-based filler text cleaned of punctuation and cut
// to a random length within [min_length, max_length].
func (g *Generator) genString(c constraints) (any, error) {
	lo, err := c.intAt("min_length", plan.DefaultMinLength)
	if err != nil {
		return nil, err
	}
	hi, err := c.intAt("max_length", plan.DefaultMaxLength)
	if err != nil {
		return nil, err
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	length := g.between(max(lo, 0), max(hi, 0))
	if length == 0 {
		return "", nil
	}

	var text []rune
	for len(text) < length*2 {
		if len(text) > 0 {
			text = append(text, ' ')
		}
		for _, r := range g.faker.Word() {
			if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
				if r == '\n' {
					r = ' '
				}
				text = append(text, r)
			}
		}
	}
	if len(text) > 0 {
		text[0] = unicode.ToUpper(text[0])
	}
	return string(text[:length]), nil
}

func (g *Generator) genStringPattern(c constraints) (any, error) {
	pattern, err := c.stringAt("pattern", plan.DefaultPattern)
	if err != nil {
		return nil, err
	}
	return expandPattern(pattern, g.rng), nil
}

func (g *Generator) genCountry(c constraints) (any, error) {
	form, err := c.stringAt("type", "name")
	if err != nil {
		return nil, err
	}
	if form == "code" {
		return g.faker.CountryAbr(), nil
	}
	return g.faker.Country(), nil
}

func (g *Generator) genCity(constraints) (any, error) {
	return g.faker.City(), nil
}

func (g *Generator) genLatLong(c constraints) (any, error) {
	lat := round(g.uniform(-90, 90), 6)
	lon := round(g.uniform(-180, 180), 6)

	form, err := c.stringAt("format", "object")
	if err != nil {
		return nil, err
	}
	switch form {
	case "string":
		return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64), nil
	case "lat":
		return lat, nil
	case "lon":
		return lon, nil
	default:
		return map[string]any{"latitude": lat, "longitude": lon}, nil
	}
}

func (g *Generator) genFixedValue(c constraints) (any, error) {
	return c.values["value"], nil
}

func (g *Generator) genBoolean(c constraints) (any, error) {
	p, err := c.floatAt("probability_true", 0.5)
	if err != nil {
		return nil, err
	}
	return g.rng.Float64() < p, nil
}

func (g *Generator) genFirstName(c constraints) (any, error) {
	gender, err := c.stringAt("gender", "")
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(gender) {
	case "male":
		return maleFirstNames[g.rng.IntN(len(maleFirstNames))], nil
	case "female":
		return femaleFirstNames[g.rng.IntN(len(femaleFirstNames))], nil
	default:
		return g.faker.FirstName(), nil
	}
}

func (g *Generator) genLastName(constraints) (any, error) {
	return g.faker.LastName(), nil
}

func (g *Generator) genFullName(constraints) (any, error) {
	return g.faker.Name(), nil
}

func (g *Generator) genAddress(constraints) (any, error) {
	return g.faker.Street(), nil
}

func (g *Generator) genCompany(constraints) (any, error) {
	return g.faker.Company(), nil
}

func (g *Generator) genURL(c constraints) (any, error) {
	domain, err := c.stringAt("domain", "")
	if err != nil {
		return nil, err
	}
	if domain == "" {
		return g.faker.URL(), nil
	}
	segments := make([]string, 1+g.rng.IntN(3))
	for i := range segments {
		segments[i] = strings.ToLower(g.faker.Word())
	}
	return "https://" + domain + "/" + strings.Join(segments, "/"), nil
}

func (g *Generator) genCurrency(c constraints) (any, error) {
	lo, hi, err := c.floatRange(plan.DefaultCurrencyMin, plan.DefaultCurrencyMax)
	if err != nil {
		return nil, err
	}
	return round(g.uniform(lo, hi), 2), nil
}

// between returns a uniform integer in [lo, hi]; lo must not exceed hi.
// The span is computed in uint64 so any pair of ints is accepted.
func (g *Generator) between(lo, hi int) int {
	span := uint64(int64(hi)-int64(lo)) + 1
	if span == 0 {
		// [MinInt64, MaxInt64]
		return int(g.rng.Uint64())
	}
	return int(int64(lo) + int64(g.rng.Uint64N(span)))
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func round(v float64, precision int) float64 {
	if precision > 15 {
		return v
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}
