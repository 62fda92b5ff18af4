package field

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/YoshitsuguKoike/propbrief/internal/pkg/amount"
)

// Kind is the storage type of a field value
type Kind string

const (
	KindText   Kind = "text"
	KindAmount Kind = "amount" // whole naira, de-formatted on input
	KindNumber Kind = "number"
	KindList   Kind = "list"
	KindBool   Kind = "bool"
)

// String returns the string representation
func (k Kind) String() string {
	return string(k)
}

// IsValid validates the kind
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindAmount, KindNumber, KindList, KindBool:
		return true
	default:
		return false
	}
}

// Value holds exactly one raw value. The zero Value of any kind is empty.
type Value struct {
	kind Kind
	text string
	amt  int64
	num  float64
	list []string
	flag bool
	set  bool
}

// Empty returns the empty representation for a kind
func Empty(kind Kind) Value {
	return Value{kind: kind}
}

// Text creates a text value; blank input is empty
func Text(s string) Value {
	s = strings.TrimSpace(s)
	return Value{kind: KindText, text: s, set: s != ""}
}

// Amount creates an amount value
func Amount(n int64) Value {
	return Value{kind: KindAmount, amt: n, set: true}
}

// Number creates a decimal value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f, set: true}
}

// List creates a list value, dropping blanks and duplicates
func List(items ...string) Value {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return Value{kind: KindList, list: out, set: len(out) > 0}
}

// Bool creates a boolean value; false is the empty representation
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b, set: b}
}

// Parse converts raw user input into a value of the given kind.
// Blank input always yields the empty value.
func Parse(kind Kind, input string) (Value, error) {
	if strings.TrimSpace(input) == "" {
		return Empty(kind), nil
	}
	switch kind {
	case KindText:
		return Text(input), nil
	case KindAmount:
		n, err := amount.ParseInt(input)
		if err != nil {
			if errors.Is(err, amount.ErrEmpty) {
				return Empty(kind), nil
			}
			return Value{}, err
		}
		return Amount(n), nil
	case KindNumber:
		f, err := amount.ParseDecimal(input)
		if err != nil {
			if errors.Is(err, amount.ErrEmpty) {
				return Empty(kind), nil
			}
			return Value{}, err
		}
		return Number(f), nil
	case KindList:
		return List(strings.Split(input, ",")...), nil
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "1", "true", "yes", "y", "on":
			return Bool(true), nil
		case "0", "false", "no", "n", "off":
			return Bool(false), nil
		}
		return Value{}, fmt.Errorf("invalid yes/no value %q", input)
	default:
		return Value{}, fmt.Errorf("unknown field kind %q", kind)
	}
}

// FromAny converts decoded JSON/YAML scalars and lists into a value
func FromAny(kind Kind, raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Empty(kind), nil
	case string:
		return Parse(kind, v)
	case bool:
		if kind != KindBool {
			return Value{}, fmt.Errorf("expected %s, got boolean", kind)
		}
		return Bool(v), nil
	case int:
		return FromAny(kind, float64(v))
	case int64:
		return FromAny(kind, float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Value{}, fmt.Errorf("number must be finite")
		}
		switch kind {
		case KindAmount:
			if v < 0 || v >= math.MaxInt64 || v != math.Trunc(v) {
				return Value{}, fmt.Errorf("amount must be a whole non-negative number")
			}
			return Amount(int64(v)), nil
		case KindNumber:
			if v < 0 {
				return Value{}, fmt.Errorf("number cannot be negative")
			}
			return Number(v), nil
		case KindText:
			return Text(amount.FormatDecimal(v)), nil
		}
		return Value{}, fmt.Errorf("expected %s, got number", kind)
	case []any:
		if kind != KindList {
			return Value{}, fmt.Errorf("expected %s, got list", kind)
		}
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("list items must be strings")
			}
			items = append(items, s)
		}
		return List(items...), nil
	case []string:
		if kind != KindList {
			return Value{}, fmt.Errorf("expected %s, got list", kind)
		}
		return List(v...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// Kind returns the value's kind
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether the value is the empty representation
func (v Value) IsEmpty() bool {
	return !v.set
}

// TextValue returns the text content
func (v Value) TextValue() string {
	return v.text
}

// AmountValue returns the raw amount
func (v Value) AmountValue() int64 {
	return v.amt
}

// NumberValue returns the decimal content
func (v Value) NumberValue() float64 {
	return v.num
}

// ListValue returns a copy of the list content
func (v Value) ListValue() []string {
	if len(v.list) == 0 {
		return nil
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// BoolValue returns the boolean content
func (v Value) BoolValue() bool {
	return v.flag
}

// Equal compares two values by content
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.set != other.set {
		return false
	}
	if !v.set {
		return true
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindAmount:
		return v.amt == other.amt
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Display renders the value for people, formatting amounts only here
func (v Value) Display() string {
	if !v.set {
		return ""
	}
	switch v.kind {
	case KindText:
		return v.text
	case KindAmount:
		return amount.Format(v.amt)
	case KindNumber:
		return amount.FormatDecimal(v.num)
	case KindList:
		return strings.Join(v.list, ", ")
	case KindBool:
		return strconv.FormatBool(v.flag)
	}
	return ""
}

// MarshalJSON writes the raw value, or null when empty
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindAmount:
		return json.Marshal(v.amt)
	case KindNumber:
		return json.Marshal(v.num)
	case KindList:
		return json.Marshal(v.list)
	case KindBool:
		return json.Marshal(v.flag)
	}
	return []byte("null"), nil
}
