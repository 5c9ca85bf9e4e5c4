package asicminervalue

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"minerprofit-backend/lib/htmlutil"
	"minerprofit-backend/lib/minername"
	"minerprofit-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	// LookbehindWindow is how many characters before a profit marker are
	// searched for the miner it belongs to.
	LookbehindWindow = 800
	// MaxDailyProfitUsd rejects markers that can only come from parse drift.
	MaxDailyProfitUsd = 10000
	// MinModelLength rejects models that are too short to be real.
	MinModelLength = 2
)

var (
	profitMarkerRegex = regexp.MustCompile(`\$\s*([\d,.]+)\s*/\s*day`)
	powerRegex        = regexp.MustCompile(`(\d{2,5})\s*W\b`)
)

var algorithms = []string{
	"SHA-256",
	"Scrypt",
	"Equihash",
	"EtHash",
	"RandomX",
	"zkSNARK",
	"VersaHash",
	"Blake3",
	"KHeavyHash",
}

type coinPattern struct {
	coin    string
	pattern *regexp.Regexp
}

var coins = []coinPattern{
	{coin: "Bitcoin", pattern: regexp.MustCompile(`(?i)\b(bitcoin|btc)\b`)},
	{coin: "LTC/DOGE", pattern: regexp.MustCompile(`(?i)\b(litecoin|ltc|dogecoin|doge)\b`)},
	{coin: "Zcash", pattern: regexp.MustCompile(`(?i)\b(zcash|zec|horizen)\b`)},
	{coin: "Monero", pattern: regexp.MustCompile(`(?i)\b(monero|xmr)\b`)},
	{coin: "ETC", pattern: regexp.MustCompile(`(?i:\bethereum classic\b)|\bETC\b`)},
	{coin: "Aleo", pattern: regexp.MustCompile(`(?i)\baleo\b`)},
	{coin: "Kaspa", pattern: regexp.MustCompile(`(?i)\b(kaspa|kas)\b`)},
	{coin: "InitVerse", pattern: regexp.MustCompile(`(?i)\binitverse\b`)},
}

// namePattern finds "<Manufacturer> [<Manufacturer>] <Model> ( <hashrate> )",
// the doubled variant is tried first because some layouts repeat the
// manufacturer and the single variant would swallow the repetition.
type namePattern struct {
	manufacturer string
	doubled      *regexp.Regexp
	single       *regexp.Regexp
}

const modelAndHashrate = `\s+([\w\s\-+.]+?)\s*\(\s*([\d.,]+\s*(?:Ph|Th|Gh|Mh|kh))\s*\)`

var namePatterns = func() []namePattern {
	patterns := make([]namePattern, len(minername.Manufacturers))
	for i, m := range minername.Manufacturers {
		quoted := regexp.QuoteMeta(m.Name)
		patterns[i] = namePattern{
			manufacturer: m.Name,
			doubled:      regexp.MustCompile(fmt.Sprintf(`(?i)%s\s+%s%s`, quoted, quoted, modelAndHashrate)),
			single:       regexp.MustCompile(fmt.Sprintf(`(?i)%s%s`, quoted, modelAndHashrate)),
		}
	}
	return patterns
}()

// nameMatch is a manufacturer/model/hashrate hit inside a lookbehind window.
type nameMatch struct {
	start, end   int
	manufacturer string
	model        string
	hashrate     string
}

func lastMatch(pattern *regexp.Regexp, window string) []int {
	all := pattern.FindAllStringSubmatchIndex(window, -1)
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// closestName returns the miner name closest to the end of window.
func closestName(window string) (nameMatch, bool) {
	var best nameMatch
	found := false

	for _, p := range namePatterns {
		// the single layout also matches a doubled name ending at the same
		// spot, the doubled match is kept in that case
		loc := lastMatch(p.doubled, window)
		if single := lastMatch(p.single, window); single != nil && (loc == nil || single[1] > loc[1]) {
			loc = single
		}
		if loc == nil {
			continue
		}

		model := strings.TrimSpace(window[loc[2]:loc[3]])
		if len(model) < MinModelLength {
			continue
		}
		candidate := nameMatch{
			start:        loc[0],
			end:          loc[1],
			manufacturer: p.manufacturer,
			model:        model,
			hashrate:     strings.TrimSpace(window[loc[4]:loc[5]]),
		}
		if !found ||
			candidate.end > best.end ||
			(candidate.end == best.end && candidate.start > best.start) {
			best = candidate
			found = true
		}
	}

	return best, found
}

func parseNumber(s string) float64 {
	value, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

func findPower(text string) string {
	groups := powerRegex.FindStringSubmatch(text)
	if groups == nil {
		return ""
	}
	return groups[1] + "W"
}

func findAlgorithm(text string) string {
	lowered := strings.ToLower(text)
	for _, alg := range algorithms {
		if strings.Contains(lowered, strings.ToLower(alg)) {
			return alg
		}
	}
	return ""
}

func findCoin(text string) string {
	for _, c := range coins {
		if c.pattern.MatchString(text) {
			return c.coin
		}
	}
	return ""
}

// firstOf runs find over the miner's own segment first and only then
// over the whole lookbehind window.
func firstOf(find func(string) string, segment, window string) string {
	if out := find(segment); out != "" {
		return out
	}
	return find(window)
}

// Extract parses the markup of the source page into miner records.
func Extract(page string) ([]MinerRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, err
	}
	return ExtractText(htmlutil.VisibleText(doc), time.Now()), nil
}

// ExtractText scans visible page text for "$<n> /day" profit markers and
// pairs each with the closest preceding miner name. The result is
// de-duplicated by normalized name, the first occurrence wins.
func ExtractText(text string, fetchedAt time.Time) []MinerRecord {
	var records []MinerRecord
	seen := make(map[string]struct{})

	for _, marker := range profitMarkerRegex.FindAllStringSubmatchIndex(text, -1) {
		profit := parseNumber(text[marker[2]:marker[3]])
		if math.IsNaN(profit) || math.IsInf(profit, 0) || profit <= 0 || profit > MaxDailyProfitUsd {
			continue
		}

		window := text[max(0, marker[0]-LookbehindWindow):marker[0]]
		name, ok := closestName(window)
		if !ok {
			continue
		}

		fullName := fmt.Sprintf("%s %s", name.manufacturer, name.model)
		key := textutil.NormalizeName(fullName)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		segment := window[name.start:]
		records = append(records, MinerRecord{
			Slug:           textutil.Slugify(fullName),
			Name:           fullName,
			Manufacturer:   name.manufacturer,
			DailyProfitUsd: profit,
			Hashrate:       name.hashrate + "/s",
			Power:          firstOf(findPower, segment, window),
			Algorithm:      firstOf(findAlgorithm, segment, window),
			Coin:           firstOf(findCoin, segment, window),
			FetchedAt:      fetchedAt,
		})
	}

	return records
}
