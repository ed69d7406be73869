package service

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Source supplies the randomness used by the fabrication functions. Production
// code uses NewSource; tests inject a deterministic implementation.
type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// lockedSource guards a *rand.Rand so one source can be shared across the
// concurrent request goroutines serving scans.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// NewSource returns a time-seeded, goroutine-safe randomness source.
func NewSource() Source {
	return &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// RandomPastDate returns a timestamp between now and maxMonths months ago.
// The month offset is approximated as 30 days; this is intentionally not
// calendar-exact.
func RandomPastDate(src Source, maxMonths int) time.Time {
	now := time.Now().UTC()
	days := src.Intn(maxMonths+1)*30 + src.Intn(30)
	return now.AddDate(0, 0, -days)
}

// AddMonths performs calendar-correct month addition: year overflow carries,
// the day-of-month clamps to the target month's length (leap-aware), and the
// time-of-day is preserved. Adding 1 month to Jan 31 yields Feb 28 or Feb 29
// depending on the year.
func AddMonths(t time.Time, months int) time.Time {
	month := int(t.Month()) - 1 + months
	year := t.Year() + month/12
	month = month%12 + 1

	day := t.Day()
	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RandomRating returns a uniform sustainability rating in [50, 95].
func RandomRating(src Source) int {
	return 50 + src.Intn(46)
}

// RandomFootprint returns a uniform carbon-footprint estimate in [0.5, 5.5),
// rounded to 2 decimal places.
func RandomFootprint(src Source) float64 {
	return math.Round((0.5+src.Float64()*5)*100) / 100
}
