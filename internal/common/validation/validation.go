package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxRaffleNameLength       = 200
	MaxPrizeDescriptionLength = 500
	MaxBuyerNameLength        = 100
	MaxTotalNumbers           = 10000

	MinRaffleNameLength       = 1
	MinPrizeDescriptionLength = 1
	MinBuyerNameLength        = 1
	MinTotalNumbers           = 1
)

// Digits with optional leading "+", spaces, dashes, dots and parentheses; 3-20 chars.
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()\-.]{2,19}$`)

func validateText(field, value string, minLen, maxLen int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters long", field, minLen)
	}

	if length > maxLen {
		return fmt.Errorf("%s cannot exceed %d characters", field, maxLen)
	}

	return nil
}

// ValidateRaffleName checks a raffle title.
func ValidateRaffleName(name string) error {
	return validateText("name", name, MinRaffleNameLength, MaxRaffleNameLength)
}

// ValidatePrizeDescription checks the free-text description of a prize.
func ValidatePrizeDescription(description string) error {
	return validateText("prize description", description, MinPrizeDescriptionLength, MaxPrizeDescriptionLength)
}

// ValidateBuyerName checks the name recorded on a sold ticket.
func ValidateBuyerName(name string) error {
	return validateText("buyer name", name, MinBuyerNameLength, MaxBuyerNameLength)
}

// ValidatePhone checks a buyer phone number.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("phone cannot be empty")
	}

	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("phone must contain 3-20 digits, spaces or dashes, optionally starting with '+'")
	}

	return nil
}

// ValidateTotalNumbers checks the size of a raffle number pool.
func ValidateTotalNumbers(total int) error {
	if total < MinTotalNumbers || total > MaxTotalNumbers {
		return fmt.Errorf("total numbers must be between %d and %d", MinTotalNumbers, MaxTotalNumbers)
	}
	return nil
}
