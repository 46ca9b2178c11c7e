package models

import "encoding/json"

// Temperature is a relationship-temperature score in [0,100]. The backend
// owns the range invariant; the client does not clamp. Non-numeric JSON
// values are coerced to 0 at the boundary so downstream aggregation never
// sees anything but a number.
type Temperature float64

// UnmarshalJSON accepts any JSON value: numbers (including numeric strings,
// which some backends emit) parse normally, everything else becomes 0.
func (t *Temperature) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*t = Temperature(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		var num json.Number = json.Number(s)
		if f, err := num.Float64(); err == nil {
			*t = Temperature(f)
			return nil
		}
	}
	*t = 0
	return nil
}
