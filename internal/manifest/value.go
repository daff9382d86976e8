package manifest

import (
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FlatValue is the subset of TOML values with no nested structure: the only
// value kinds a fel4 property may carry. Arrays and tables are deliberately
// unrepresentable; the parser rejects them instead of flattening.
type FlatValue interface {
	flatValue()
	// Text renders the value the way the external build configurator
	// expects it: TOML-compatible scalar text.
	Text() string
}

// StringValue is a TOML string property value.
type StringValue string

// IntegerValue is a TOML integer property value.
type IntegerValue int64

// FloatValue is a TOML float property value.
type FloatValue float64

// BooleanValue is a TOML boolean property value.
type BooleanValue bool

// DatetimeValue is a TOML datetime property value, held in its textual
// form so the original representation survives the round trip.
type DatetimeValue string

func (StringValue) flatValue()   {}
func (IntegerValue) flatValue()  {}
func (FloatValue) flatValue()    {}
func (BooleanValue) flatValue()  {}
func (DatetimeValue) flatValue() {}

func (v StringValue) Text() string   { return string(v) }
func (v IntegerValue) Text() string  { return strconv.FormatInt(int64(v), 10) }
func (v FloatValue) Text() string    { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v BooleanValue) Text() string  { return strconv.FormatBool(bool(v)) }
func (v DatetimeValue) Text() string { return string(v) }

// FlatProperty is a single named scalar configuration entry. Names are
// case- and punctuation-sensitive and unique only within the overlay group
// they were extracted from; global uniqueness is enforced at merge time.
type FlatProperty struct {
	Name  string
	Value FlatValue
}

// flatValueOf maps a decoded TOML leaf to its FlatValue. The second return
// is false for arrays, tables, and anything else with structure.
func flatValueOf(raw any) (FlatValue, bool) {
	switch v := raw.(type) {
	case string:
		return StringValue(v), true
	case int64:
		return IntegerValue(v), true
	case float64:
		return FloatValue(v), true
	case bool:
		return BooleanValue(v), true
	case time.Time:
		// Formatted placeholder; Parse swaps in the document's own
		// spelling once the tree walk has succeeded.
		return DatetimeValue(v.Format(time.RFC3339Nano)), true
	case toml.LocalDateTime:
		return DatetimeValue(v.String()), true
	case toml.LocalDate:
		return DatetimeValue(v.String()), true
	case toml.LocalTime:
		return DatetimeValue(v.String()), true
	}
	return nil, false
}
