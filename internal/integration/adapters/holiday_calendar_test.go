package adapters

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBrazilianHolidayCalendar(t *testing.T) {
	calendar := NewBrazilianHolidayCalendar(nil, discardLogger())

	tests := []struct {
		name    string
		date    time.Time
		holiday bool
	}{
		{"new year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"tiradentes", time.Date(2024, 4, 21, 0, 0, 0, 0, time.UTC), true},
		{"labor day", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"christmas", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{"easter 2024", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), true},
		{"good friday 2024", time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC), true},
		{"corpus christi 2024", time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), true},
		{"easter 2025", time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), true},
		{"ordinary weekday", time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), false},
		{"ordinary weekend", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.IsHoliday(tt.date); got != tt.holiday {
				t.Errorf("IsHoliday(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.holiday)
			}
		})
	}
}

func TestBrazilianHolidayCalendarRedisCache(t *testing.T) {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	calendar := NewBrazilianHolidayCalendar(client, discardLogger())

	if !calendar.IsHoliday(time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected independence day to be a holiday")
	}

	if !server.Exists("holidays:2024") {
		t.Error("expected holiday set for 2024 to be cached in redis")
	}

	// A fresh instance should answer from the shared cache.
	other := NewBrazilianHolidayCalendar(client, discardLogger())
	if !other.IsHoliday(time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected republic day to be a holiday via cached set")
	}
}

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{2025, time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)},
		{2026, time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)},
		{2030, time.Date(2030, 4, 21, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		if got := easterSunday(tt.year); !got.Equal(tt.want) {
			t.Errorf("easterSunday(%d) = %s, want %s", tt.year, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}
