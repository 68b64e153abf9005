package calc

// Operation is one of the four supported arithmetic actions.
type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

// Display labels shown by the operation picker
const (
	LabelAdd      = "Suma"
	LabelSubtract = "Resta"
	LabelMultiply = "Multiplicación"
	LabelDivide   = "División"
)

var operations = []Operation{Add, Subtract, Multiply, Divide}

var labels = map[Operation]string{
	Add:      LabelAdd,
	Subtract: LabelSubtract,
	Multiply: LabelMultiply,
	Divide:   LabelDivide,
}

var symbols = map[Operation]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "×",
	Divide:   "÷",
}

// Operations returns every operation in picker order.
func Operations() []Operation {
	ops := make([]Operation, len(operations))
	copy(ops, operations)
	return ops
}

// Labels returns the picker labels in picker order.
func Labels() []string {
	result := make([]string, 0, len(operations))
	for _, op := range operations {
		result = append(result, op.Label())
	}
	return result
}

// ParseOperation maps a display label to its operation. Anything that is not
// one of the four labels, including the empty string, selects Add.
func ParseOperation(label string) Operation {
	for _, op := range operations {
		if labels[op] == label {
			return op
		}
	}
	return Add
}

// Label returns the display label of the operation.
func (op Operation) Label() string {
	if label, ok := labels[op]; ok {
		return label
	}
	return LabelAdd
}

// Symbol returns the arithmetic symbol used in text renderings.
func (op Operation) Symbol() string {
	if symbol, ok := symbols[op]; ok {
		return symbol
	}
	return symbols[Add]
}

func (op Operation) String() string {
	return op.Label()
}

// Next returns the operation after op in picker order, wrapping around.
func (op Operation) Next() Operation {
	return operations[(op.index()+1)%len(operations)]
}

// Prev returns the operation before op in picker order, wrapping around.
func (op Operation) Prev() Operation {
	return operations[(op.index()+len(operations)-1)%len(operations)]
}

func (op Operation) index() int {
	for i, candidate := range operations {
		if candidate == op {
			return i
		}
	}
	return 0
}

// MarshalText encodes the operation as its display label.
func (op Operation) MarshalText() ([]byte, error) {
	return []byte(op.Label()), nil
}

// UnmarshalText decodes a display label, falling back to Add like the picker.
func (op *Operation) UnmarshalText(text []byte) error {
	*op = ParseOperation(string(text))
	return nil
}
