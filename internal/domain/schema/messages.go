package schema

import (
	"regexp"
	"strings"

	"clientverse/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var indexPattern = regexp.MustCompile(`\[\d+\]`)

// fieldMessages are keyed by the last one or two segments of a field path, indices removed.
//
//nolint:gochecknoglobals
var fieldMessages = map[string]string{
	"clientName":         "Client name must be at least 2 characters.",
	"mobiles.value":      "Cannot be empty",
	"addresses.value":    "Address cannot be empty",
	"addresses.type":     "Address type must be one of " + addressTypeList(),
	"customFields.name":  "Field name cannot be empty",
	"customFields.value": "Field value cannot be empty",
	"familyMembers.name": "Name is required",
	"policyNo":           "Policy number cannot be empty",
	"companyName":        "Company name cannot be empty",
	"amc":                "Fund house cannot be empty",
	"folio":              "Folio number cannot be empty",
	"units":              "Units cannot be empty",
	"nav":                "NAV cannot be empty",
	"investmentAmount":   "Investment amount cannot be empty",
}

func addressTypeList() string {
	types := entity.AddressTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	return strings.Join(names, ", ")
}

func messageFor(path string, fe validator.FieldError) string {
	segments := strings.Split(indexPattern.ReplaceAllString(path, ""), ".")

	if len(segments) >= 2 {
		if msg, ok := fieldMessages[strings.Join(segments[len(segments)-2:], ".")]; ok {
			return msg
		}
	}
	if msg, ok := fieldMessages[segments[len(segments)-1]]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return "Cannot be empty"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "oneof":
		return "Must be one of " + fe.Param()
	default:
		return "Invalid value"
	}
}
