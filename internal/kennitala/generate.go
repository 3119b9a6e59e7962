package kennitala

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/olgasafonova/iceland-registry-mcp-server/metrics"
)

// Default date ranges for generation when the caller supplies none.
var (
	defaultPersonalStart = time.Date(1930, 1, 1, 0, 0, 0, 0, time.UTC)
	defaultCompanyStart  = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	defaultEnd           = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

// GenOptions control the checksum policy and output shape of generated
// kennitölur. The zero value produces a checksum-valid, DDMMYY-NNNX
// formatted result.
type GenOptions struct {
	// SkipChecksum emits a deliberately wrong check digit, producing an ID
	// that is structurally valid but fails strict validation. Mirrors the
	// IDs the registry will issue once the Modulus 11 rule lapses.
	SkipChecksum bool

	// Raw returns 10 digits without the hyphen.
	Raw bool
}

// Generator produces synthetic, structurally valid kennitölur. Randomness
// comes from the injected source, so a seeded source makes output fully
// reproducible. A Generator is not safe for concurrent use; give each
// goroutine its own, or serialize calls.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng. A nil rng falls back
// to a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a deterministic Generator for the given seed.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Personal generates a kennitala for an individual with a random birth date
// between 1930-01-01 and 2025-12-31.
func (g *Generator) Personal(opts GenOptions) (string, error) {
	return g.RandomPersonal(defaultPersonalStart, defaultEnd, opts)
}

// Company generates a kennitala for a company with a random registration
// date between 1990-01-01 and 2025-12-31.
func (g *Generator) Company(opts GenOptions) (string, error) {
	return g.RandomCompany(defaultCompanyStart, defaultEnd, opts)
}

// PersonalForDate generates a personal kennitala encoding the given birth
// date. The year must be within 1800-2099.
func (g *Generator) PersonalForDate(birth time.Time, opts GenOptions) (string, error) {
	return g.generate(birth, false, opts)
}

// CompanyForDate generates a company kennitala encoding the given
// registration date. The year must be within 1800-2099.
func (g *Generator) CompanyForDate(reg time.Time, opts GenOptions) (string, error) {
	return g.generate(reg, true, opts)
}

// RandomPersonal generates a personal kennitala with a birth date drawn
// uniformly from [start, end]. Returns an error wrapping ErrRange when
// start is after end, before consuming any randomness.
func (g *Generator) RandomPersonal(start, end time.Time, opts GenOptions) (string, error) {
	d, err := g.randomDate(start, end)
	if err != nil {
		return "", err
	}
	return g.generate(d, false, opts)
}

// RandomCompany generates a company kennitala with a registration date
// drawn uniformly from [start, end].
func (g *Generator) RandomCompany(start, end time.Time, opts GenOptions) (string, error) {
	d, err := g.randomDate(start, end)
	if err != nil {
		return "", err
	}
	return g.generate(d, true, opts)
}

// generate is the single algorithm behind every entry point: encode the
// date, draw a sequence from [20,99], compute the check digit, and append
// the century indicator.
func (g *Generator) generate(date time.Time, company bool, opts GenOptions) (string, error) {
	indicator, err := centuryIndicatorForYear(date.Year())
	if err != nil {
		return "", err
	}

	day := date.Day()
	if company {
		day += 40
	}

	var first8 string
	var check int
	for {
		seq := 20 + g.rng.IntN(80)
		first8 = fmt.Sprintf("%02d%02d%02d%02d", day, int(date.Month()), date.Year()%100, seq)
		digit, ok := ComputeCheckDigit(first8)
		if !opts.SkipChecksum {
			if !ok {
				// No valid check digit exists for this sequence; try another.
				metrics.SentinelRetries.Inc()
				continue
			}
			check = digit
			break
		}
		// Relaxed output: pick any digit other than the correct one. When no
		// correct digit exists there is nothing to avoid, so draw from all 10.
		if !ok {
			check = g.rng.IntN(10)
		} else {
			check = g.rng.IntN(9)
			if check >= digit {
				check++
			}
		}
		break
	}

	digits := fmt.Sprintf("%s%d%d", first8, check, indicator)
	if opts.Raw {
		return digits, nil
	}
	return formatDigits(digits), nil
}

// randomDate draws a date uniformly from [start, end], inclusive.
func (g *Generator) randomDate(start, end time.Time) (time.Time, error) {
	start = midnightUTC(start)
	end = midnightUTC(end)
	if start.After(end) {
		return time.Time{}, fmt.Errorf("%w: %s > %s", ErrRange,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	// Unix-second arithmetic instead of a Duration: Durations saturate
	// around 292 years, which would truncate a full 1800-2099 range. Both
	// bounds sit at midnight UTC, so the difference is a whole day count.
	days := int((end.Unix() - start.Unix()) / 86400)
	return start.AddDate(0, 0, g.rng.IntN(days+1)), nil
}

// centuryIndicatorForYear maps a year to its kennitala century digit.
func centuryIndicatorForYear(year int) (int, error) {
	switch {
	case year >= 1800 && year <= 1899:
		return 8, nil
	case year >= 1900 && year <= 1999:
		return 9, nil
	case year >= 2000 && year <= 2099:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrYear, year)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
