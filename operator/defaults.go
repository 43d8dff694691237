package operator

// The built-in catalogue. Kept unexported so callers cannot mutate the
// shared definitions; Defaults returns a fresh copy for each parser.
var defaults = []Operator{
	NewBinary("add", "+", Normal),
	NewBinary("subtract", "-", Normal),
	NewBinary("multiply", "*", Medium),
	NewBinary("divide", "/", Medium),
	NewBinary("power", "^", High),
	NewFunction("sin", "sin", 1),
	NewFunction("cos", "cos", 1),
	NewFunction("tan", "tan", 1),
	NewFunction("log", "log", 1),
	NewFunction("sqrt", "sqrt", 1),
	NewFunction("min", "min", 2),
	NewFunction("max", "max", 2),
}

// Defaults returns a copy of the default operator catalogue: the arithmetic
// binary operators and a small set of named functions. The unary minus is
// not part of the catalogue; see Negate.
func Defaults() []Operator {
	out := make([]Operator, len(defaults))
	copy(out, defaults)
	return out
}

// Negate returns the built-in unary minus. It is handled specially by the
// parser: it is tried only after all registered unary operators fail to
// claim, and only when the preceding token allows a unary reading of "-".
func Negate() Operator {
	return NewUnary("negate", "-")
}

// Multiply returns the product operator used when the parser synthesizes an
// implicit multiplication between adjacent operands.
func Multiply() Operator {
	return NewBinary("multiply", "*", Medium)
}
