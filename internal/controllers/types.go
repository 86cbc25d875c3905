package controllers

import (
	"github.com/fintrack/backend/internal/types"
	"golang.org/x/exp/slices"
)

// MessageResponse is returned by endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message" example:"expense deleted successfully"`
}

// requiredField maps a Go field name to its JSON parameter.
type requiredField struct {
	field string
	param string
}

// checkRequired returns an error for the first required field not in set.
func checkRequired(set []string, required ...requiredField) error {
	for _, r := range required {
		if !slices.Contains(set, r.field) {
			return missingField(r.param)
		}
	}

	return nil
}

// monthOrCurrent parses the month query parameter and falls back to the
// current month if it is empty.
func monthOrCurrent(param string) (types.Month, error) {
	if param == "" {
		return types.CurrentMonth(), nil
	}

	return types.ParseMonth(param)
}
