package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotPositive   = errors.New("value must be positive")
	ErrNotAllowed    = errors.New("value is not one of the allowed choices")
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrEmptyListItem = errors.New("list contains an empty item")
)

func trimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func toLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(s))
}

func parseSlogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// splitList splits a comma separated value, trimming each item.
func splitList(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, ErrEmptyListItem
		}

		out = append(out, part)
	}

	return out, nil
}

func parseIntList(s string) ([]int, error) {
	items, err := splitList(s)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(items))

	for i, item := range items {
		out[i], err = strconv.Atoi(item)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Positive is a validator for numeric settings that must be greater than zero.
func Positive[N ~int | ~int64 | ~uint64](value N) error {
	if value <= 0 {
		return fmt.Errorf("%w: %v", ErrNotPositive, value)
	}

	return nil
}

// OneOf returns a validator accepting only the given choices.
func OneOf[A comparable](choices ...A) func(A) error {
	return func(value A) error {
		if slices.Contains(choices, value) {
			return nil
		}

		return fmt.Errorf("%w: %v (choices are %v)", ErrNotAllowed, value, choices)
	}
}
