package types

// BaseDescriptor is the public description of a Base for API consumers.
type BaseDescriptor struct {
	ID    Base   `json:"id"`
	Radix int    `json:"radix"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Validation is the outcome of checking a numeral against a base.
type Validation struct {
	Value string `json:"value"`
	Base  Base   `json:"base"`
	Valid bool   `json:"valid"`

	// FirstInvalid is the byte offset of the first offending character, or -1.
	FirstInvalid int `json:"first_invalid"`
}

// Conversion is a completed conversion request.
type Conversion struct {
	Value  string `json:"value"`
	From   Base   `json:"from"`
	To     Base   `json:"to"`
	Result string `json:"result"`
}
