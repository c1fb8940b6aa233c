package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrValidation          = errors.New("validation failed")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrProviderFailure     = errors.New("provider failure")
	ErrDeviceNotConnected  = errors.New("device not connected")
)
