package table

// Value is a nullable text cell.
type Value struct {
	text  string
	valid bool
}

// Text wraps s as a present value. Empty text is still present.
func Text(s string) Value { return Value{text: s, valid: true} }

// Null returns the absent value.
func Null() Value { return Value{} }

// Cell converts raw CSV text: empty cells are null.
func Cell(s string) Value {
	if s == "" {
		return Null()
	}
	return Text(s)
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return !v.valid }

// String returns the text, or "" for null.
func (v Value) String() string { return v.text }
