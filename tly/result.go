package tly

// ResultKind identifies which of the four response shapes a call produced.
type ResultKind int

const (
	// ResultEmpty means the response body was blank.
	ResultEmpty ResultKind = iota
	// ResultJSON means the body decoded as JSON.
	ResultJSON
	// ResultText means the body was non-JSON text.
	ResultText
	// ResultBinary means raw bytes were requested and returned.
	ResultBinary
)

// String returns a short name for the kind.
func (k ResultKind) String() string {
	switch k {
	case ResultEmpty:
		return "empty"
	case ResultJSON:
		return "json"
	case ResultText:
		return "text"
	case ResultBinary:
		return "binary"
	}
	return "unknown"
}

// Result is the normalized outcome of a successful API call. Exactly one
// variant is populated, identified by Kind.
type Result struct {
	Kind  ResultKind
	Value any    // decoded JSON when Kind is ResultJSON
	Text  string // trimmed body when Kind is ResultText
	Bytes []byte // raw body when Kind is ResultBinary
}

// Decoded returns the populated variant as a dynamic value. Empty results
// decode to an empty map so callers can treat them like any other JSON
// object.
func (r Result) Decoded() any {
	switch r.Kind {
	case ResultJSON:
		return r.Value
	case ResultText:
		return r.Text
	case ResultBinary:
		return r.Bytes
	}
	return map[string]any{}
}
