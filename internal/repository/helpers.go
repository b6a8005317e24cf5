package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
)

// encodeDays stores a weekday list as a comma-separated string of ISO ids.
func encodeDays(days []domain.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

func decodeDays(s string) ([]domain.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]domain.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("decoding weekday %q: %w", p, err)
		}
		days = append(days, domain.Weekday(n))
	}
	return days, nil
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// timeToValue converts a *time.Time to a SQLite value, NULL when nil.
func timeToValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
