package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrPayoutExceedsBalance = errors.New("payout exceeds balance")

	ErrCreatorNotFound = fmt.Errorf("creator %w", ErrNotFound)
	ErrContentNotFound = fmt.Errorf("content %w", ErrNotFound)
	ErrTierNotFound    = fmt.Errorf("tier %w", ErrNotFound)
)
