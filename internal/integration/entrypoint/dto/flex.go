package dto

import (
	"bytes"
	"encoding/json"
)

// FlexString accepts a JSON string or number and keeps it as text, so
// values such as "R$ 1.234,56", "85%" and 85.5 all reach the number
// normalizers unchanged.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the raw text.
func (f FlexString) String() string {
	return string(f)
}

// Ptr returns the text of an optional value, or nil when the field was
// absent or null.
func (f *FlexString) Ptr() *string {
	if f == nil {
		return nil
	}
	s := f.String()
	return &s
}
