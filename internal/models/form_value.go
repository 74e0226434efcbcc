package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// FormValue carries a numeric form field as submitted. Forms post numbers as
// strings ("12500"), API clients as JSON numbers; both decode to the same text.
// Parsing and range checks happen at the service boundary.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		*v = ""
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("value must be a number or a numeric string")
	}
	*v = FormValue(n.String())
	return nil
}

// String returns the submitted text.
func (v FormValue) String() string { return string(v) }
