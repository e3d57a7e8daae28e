package database

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

const maxAttempts = 3

// WithRetry runs fn up to three times with exponential backoff, retrying
// only on transient store errors. Validation and constraint failures return
// immediately.
func WithRetry(fn func() error) error {
	var err error
	delay := 100 * time.Millisecond
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
		if attempt < maxAttempts {
			time.Sleep(delay)
			delay *= 2
		}
	}
	return err
}

func isTransient(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrInvalidData) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"timeout",
		"too many connections",
		"the database system is starting up",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
