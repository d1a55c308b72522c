package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateParticipation checks a participation percentage is in (0, 100].
func ValidateParticipation(value float64) error {
	if value <= 0 || value > 100 {
		return NewValidationError("participation must be between 0 and 100")
	}
	return nil
}

// ValidateCostCategory checks a cost category tag is one of the known set.
func ValidateCostCategory(category string) error {
	return validateCategory(category, CostCategories, "cost category")
}

// ValidateProfitCategory checks a profit category tag is one of the known set.
func ValidateProfitCategory(category string) error {
	return validateCategory(category, ProfitCategories, "profit category")
}

func validateCategory(category string, allowed []string, fieldName string) error {
	for _, c := range allowed {
		if category == c {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("invalid %s: %s", fieldName, category))
}
