// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	holidayCacheKeyPrefix = "holidays:"
	holidayCacheTTL       = 30 * 24 * time.Hour
	redisOpTimeout        = 2 * time.Second
)

// BrazilianHolidayCalendar implements schedule.HolidayCalendar for Brazilian
// national holidays. Fixed holidays are combined with the movable ones derived
// from Easter. Computed year sets are memoized in memory and optionally shared
// through Redis so multiple instances agree on the calendar.
type BrazilianHolidayCalendar struct {
	redisClient *redis.Client
	logger      *slog.Logger

	mu    sync.RWMutex
	years map[int]map[string]struct{}
}

// NewBrazilianHolidayCalendar creates a new holiday calendar. The Redis client
// may be nil, in which case only the in-memory cache is used.
func NewBrazilianHolidayCalendar(redisClient *redis.Client, logger *slog.Logger) *BrazilianHolidayCalendar {
	return &BrazilianHolidayCalendar{
		redisClient: redisClient,
		logger:      logger,
		years:       make(map[int]map[string]struct{}),
	}
}

// IsHoliday reports whether the given date falls on a Brazilian national holiday.
func (c *BrazilianHolidayCalendar) IsHoliday(date time.Time) bool {
	year := date.Year()
	key := date.Format("2006-01-02")

	c.mu.RLock()
	set, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		_, holiday := set[key]
		return holiday
	}

	set = c.loadYear(year)

	c.mu.Lock()
	c.years[year] = set
	c.mu.Unlock()

	_, holiday := set[key]
	return holiday
}

// loadYear fetches the holiday set for a year from Redis, computing and
// caching it on a miss.
func (c *BrazilianHolidayCalendar) loadYear(year int) map[string]struct{} {
	if set := c.fetchFromRedis(year); set != nil {
		return set
	}

	dates := holidaysForYear(year)
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d.Format("2006-01-02")] = struct{}{}
	}

	c.storeInRedis(year, dates)
	return set
}

func (c *BrazilianHolidayCalendar) fetchFromRedis(year int) map[string]struct{} {
	if c.redisClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	payload, err := c.redisClient.Get(ctx, holidayCacheKey(year)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("failed to read holiday cache", "year", year, "error", err)
		}
		return nil
	}

	var dates []string
	if err := json.Unmarshal([]byte(payload), &dates); err != nil {
		c.logger.Warn("corrupt holiday cache entry", "year", year, "error", err)
		return nil
	}

	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func (c *BrazilianHolidayCalendar) storeInRedis(year int, dates []time.Time) {
	if c.redisClient == nil {
		return
	}

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format("2006-01-02")
	}

	payload, err := json.Marshal(formatted)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, holidayCacheKey(year), payload, holidayCacheTTL).Err(); err != nil {
		c.logger.Warn("failed to write holiday cache", "year", year, "error", err)
	}
}

func holidayCacheKey(year int) string {
	return fmt.Sprintf("%s%d", holidayCacheKeyPrefix, year)
}

// holidaysForYear returns every Brazilian national holiday of the year.
func holidaysForYear(year int) []time.Time {
	easter := easterSunday(year)

	return []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),    // Confraternizacao Universal
		time.Date(year, time.April, 21, 0, 0, 0, 0, time.UTC),     // Tiradentes
		time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC),        // Dia do Trabalhador
		time.Date(year, time.September, 7, 0, 0, 0, 0, time.UTC),  // Independencia do Brasil
		time.Date(year, time.October, 12, 0, 0, 0, 0, time.UTC),   // Nossa Senhora Aparecida
		time.Date(year, time.November, 2, 0, 0, 0, 0, time.UTC),   // Finados
		time.Date(year, time.November, 15, 0, 0, 0, 0, time.UTC),  // Proclamacao da Republica
		time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),  // Natal
		easter.AddDate(0, 0, -47),                                 // Carnaval (segunda)
		easter.AddDate(0, 0, -46),                                 // Carnaval (terca)
		easter.AddDate(0, 0, -2),                                  // Sexta-feira Santa
		easter,                                                    // Pascoa
		easter.AddDate(0, 0, 60),                                  // Corpus Christi
	}
}

// easterSunday computes the date of Easter Sunday using the Gauss algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	n := (h + l - 7*m + 114) / 31
	p := (h + l - 7*m + 114) % 31

	return time.Date(year, time.Month(n), p+1, 0, 0, 0, 0, time.UTC)
}
