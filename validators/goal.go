package validators

import (
	"errors"
	"strings"
)

var (
	ErrTitleEmpty      = errors.New("goal title can't be empty")
	ErrTitleTooLong    = errors.New("goal title is too long")
	ErrStatusInvalid   = errors.New("invalid status provided")
	ErrPriorityInvalid = errors.New("priority must be between 0 and 3")
)

var validStatuses = []string{"active", "completed", "paused"}

func TitleValidator(t string) error {
	if strings.TrimSpace(t) == "" {
		return ErrTitleEmpty
	}

	if len(t) > 255 {
		return ErrTitleTooLong
	}

	return nil
}

func StatusValidator(s string) error {
	for _, v := range validStatuses {
		if s == v {
			return nil
		}
	}

	return ErrStatusInvalid
}

func PriorityValidator(p int) error {
	if p < 0 || p > 3 {
		return ErrPriorityInvalid
	}

	return nil
}
