package vec2

// Operand is any value an operator system accepts: a native number, numeral
// text, or a backend value such as the *big.Float produced by the precise
// system. Systems normalize operands through Create before computing.
type Operand interface{}

// Object is the plain {x, y} view used by FromObject and ToObject. ToObject
// fills both fields with the system's textual rendering; FromObject accepts
// any operand form in either field.
type Object struct {
	X Operand `json:"x"`
	Y Operand `json:"y"`
}
