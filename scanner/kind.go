package scanner

// Kind is the JSON category of a token. The declaration order is the rank
// used when values of different kinds are ordered.
type Kind uint8

const (
	Invalid Kind = iota
	Null
	Boolean
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// IsContainer reports whether k is Array or Object.
func (k Kind) IsContainer() bool {
	return k == Array || k == Object
}
