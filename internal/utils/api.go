package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseFloatParam retrieves a float64 value from the provided URL query
// parameters. A missing key is recorded as a field error, as is a value that
// does not parse; either way the map is updated and 0 returned.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Missing required field %q.", key))
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return f, fieldErrors
}

// ValidateLatParam records a field error when the value lies outside the
// [-90, 90] latitude range.
func ValidateLatParam(value float64, key string, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}
	if value < -90 || value > 90 {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Field %q must be a latitude between -90 and 90.", key))
	}
	return fieldErrors
}

// ValidateLonParam records a field error when the value lies outside the
// [-180, 180] longitude range.
func ValidateLonParam(value float64, key string, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}
	if value < -180 || value > 180 {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Field %q must be a longitude between -180 and 180.", key))
	}
	return fieldErrors
}
