package minername

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedName holds the attributes recovered from a free-text miner or
// product name. It is recomputed on demand and never stored.
type ParsedName struct {
	// Model is the model family code ("s21", "z15", "ks5"...), empty when
	// the name has no recognizable model. An empty model never matches.
	Model string

	HasHashrate   bool
	HashrateValue float64
	// HashrateUnit is the lowercase unit prefix as written ("th", "gh"...),
	// it is only normalized when two names are compared.
	HashrateUnit string

	IsHydro     bool
	IsPro       bool
	IsXp        bool
	IsPlus      bool
	IsImmersion bool
	// IsE is set for the "e" sub-family (S21e, "S21 E EXP").
	IsE bool

	Manufacturer string
}

var (
	separatorRegex = regexp.MustCompile(`[-_]+`)
	spacesRegex    = regexp.MustCompile(`\s+`)

	modelRegex    = regexp.MustCompile(`\b(s21e?|s23|s19|z15|t21|l11|l9|d3|d1|x44|x9|ae[23]|ks\d+)(\s+e\b)?`)
	hashrateRegex = regexp.MustCompile(`(?:^|[^a-z0-9.,])\(?\s*(\d[\d,]*(?:\.\d+)?)\s*(ph|th|gh|mh|kh)(?:/s)?\b`)

	hydroRegex     = regexp.MustCompile(`\bhyd`)
	proRegex       = regexp.MustCompile(`\bpro\b`)
	xpPlusRegex    = regexp.MustCompile(`\be?xp(\s*\+|\s+plus\b)`)
	xpRegex        = regexp.MustCompile(`\be?xp\b`)
	expRegex       = regexp.MustCompile(`\bexp\b`)
	plusRegex      = regexp.MustCompile(`\+|\bplus\b`)
	immersionRegex = regexp.MustCompile(`\bimm`)
)

// Normalize lowercases a name and folds '-' and '_' runs into single spaces.
func Normalize(name string) string {
	name = strings.ToLower(name)
	name = separatorRegex.ReplaceAllString(name, " ")
	name = spacesRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// Parse extracts a ParsedName out of a product or miner name.
func Parse(name string) ParsedName {
	n := Normalize(name)

	var parsed ParsedName

	if groups := modelRegex.FindStringSubmatch(n); groups != nil {
		parsed.Model = groups[1]
		if groups[2] != "" && !strings.HasSuffix(parsed.Model, "e") {
			parsed.Model += "e"
		}
	}

	if groups := hashrateRegex.FindStringSubmatch(n); groups != nil {
		value, err := strconv.ParseFloat(strings.ReplaceAll(groups[1], ",", ""), 64)
		if err == nil {
			parsed.HasHashrate = true
			parsed.HashrateValue = value
			parsed.HashrateUnit = groups[2]
		}
	}

	parsed.IsHydro = hydroRegex.MatchString(n)
	parsed.IsPro = proRegex.MatchString(n)
	parsed.IsImmersion = immersionRegex.MatchString(n)

	// xp+ has to be tested before the bare xp
	if xpPlusRegex.MatchString(n) {
		parsed.IsXp = true
		parsed.IsPlus = true
	} else {
		parsed.IsXp = xpRegex.MatchString(n)
		parsed.IsPlus = plusRegex.MatchString(n)
	}

	// "exp" is how some listings spell the e-family XP
	if parsed.Model != "" && expRegex.MatchString(n) && !strings.HasSuffix(parsed.Model, "e") {
		parsed.Model += "e"
	}
	parsed.IsE = parsed.Model != "" && strings.HasSuffix(parsed.Model, "e")

	parsed.Manufacturer = ManufacturerOf(n)

	return parsed
}

// BaseModel strips the "e" sub-family suffix from a model code.
func BaseModel(model string) string {
	if len(model) > 1 && strings.HasSuffix(model, "e") {
		return model[:len(model)-1]
	}
	return model
}
