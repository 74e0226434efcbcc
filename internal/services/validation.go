package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dealdesk/internal/models"
)

// same shape check the contact form uses
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// requiredText records field as missing when s is nil or blank.
func requiredText(v *ValidationError, field string, s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		v.add(field, field+" is required")
		return ""
	}
	return *s
}

// parseAmount accepts a finite, non-negative decimal.
func parseAmount(v *ValidationError, field string, raw models.FormValue) float64 {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		v.add(field, field+" is required")
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		v.add(field, field+" must be a number")
		return 0
	}
	if n < 0 {
		v.add(field, field+" must not be negative")
		return 0
	}
	if n == 0 {
		// -0 parses as zero but keeps its sign bit
		return 0
	}
	return n
}

func parseDateField(v *ValidationError, field, raw string) models.Date {
	d, err := models.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		v.add(field, field+" must be a date (YYYY-MM-DD)")
		return models.Date{}
	}
	return d
}

func today(now func() time.Time) models.Date {
	if now == nil {
		now = time.Now
	}
	return models.NewDate(now())
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
