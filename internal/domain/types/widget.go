package types

// WidgetState is the converter's transient input/output state: the numeral
// being edited, the selected bases, and the last displayed result.
type WidgetState struct {
	Value  string `json:"value"`
	From   Base   `json:"from"`
	To     Base   `json:"to"`
	Result string `json:"result"`
}

// DefaultWidgetState returns the state of a freshly opened converter.
func DefaultWidgetState() WidgetState {
	return WidgetState{From: Decimal, To: Hexadecimal}
}

// WidgetView is WidgetState plus values derived from it for display.
type WidgetView struct {
	WidgetState

	// Valid is the validator's verdict on Value under From.
	Valid bool `json:"valid"`

	// Preview is the decimal value of Value; nil when Value is empty or invalid.
	Preview *int64 `json:"preview,omitempty"`

	// OutOfRange reports a valid numeral too large for a 64-bit integer.
	OutOfRange bool `json:"out_of_range,omitempty"`

	// Placeholder is the input hint, e.g. "Enter binary value".
	Placeholder string `json:"placeholder"`
}
