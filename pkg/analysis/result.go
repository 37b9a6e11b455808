package analysis

import "fmt"

// Failure describes an analysis request that did not yield a parsed
// assessment. RawResponse is set only when the reply arrived but could
// not be parsed; it carries the original text for diagnostic display.
type Failure struct {
	Message     string
	RawResponse string
}

// Result is the outcome of one analysis request. Exactly one of Fields
// or Err is populated; callers must check Failed before reading fields.
//
// The model's reply carries no enforced schema, so Fields is kept as the
// decoded mapping verbatim. The typed accessors below return an explicit
// default instead of failing on missing or wrongly-typed values.
type Result struct {
	Fields map[string]any
	Err    *Failure
}

// Failed reports whether the result carries a failure instead of fields.
func (r Result) Failed() bool {
	return r.Err != nil
}

// String returns the field as a string, or defaultValue when the field
// is absent, empty or not a string.
func (r Result) String(key string, defaultValue string) string {
	if r.Err != nil {
		return defaultValue
	}
	value, ok := r.Fields[key].(string)
	if !ok || value == "" {
		return defaultValue
	}
	return value
}

// Bool returns the field as a bool, or defaultValue when the field is
// absent or not a bool.
func (r Result) Bool(key string, defaultValue bool) bool {
	if r.Err != nil {
		return defaultValue
	}
	value, ok := r.Fields[key].(bool)
	if !ok {
		return defaultValue
	}
	return value
}

// StringList returns the field as a list of strings. Absent fields and
// non-list values yield an empty slice. Non-string list entries are
// formatted, mirroring how loosely the model types its list values.
func (r Result) StringList(key string) []string {
	if r.Err != nil {
		return nil
	}
	raw, ok := r.Fields[key].([]any)
	if !ok {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			if v != "" {
				list = append(list, v)
			}
		default:
			list = append(list, fmt.Sprint(v))
		}
	}
	return list
}
