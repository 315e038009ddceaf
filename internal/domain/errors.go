package domain

import "errors"

var (
	ErrNoDataForDate    = errors.New("no payment data for requested date")
	ErrInvalidDateRange = errors.New("start date is after end date")
	ErrLoadFailed       = errors.New("dataset load failed")
	ErrCacheMiss        = errors.New("cache miss")
)
