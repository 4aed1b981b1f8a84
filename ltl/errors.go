package ltl

// LiftError is one of the two structured failure kinds the resolver can
// record. Both are accumulated as a deduplicated set rather than thrown, so
// a single mkContext call can report every problem found across all
// declarations at once.
type LiftError struct {
	unsupported bool // true: UnsupportedType, false: UnresolvableIdent
	raw         RawType
	id          Ident
}

// UnsupportedTypeError records that a raw type constructor could not be
// mapped to any SymType/MemType.
func UnsupportedTypeError(raw RawType) LiftError {
	return LiftError{unsupported: true, raw: raw}
}

// UnresolvableIdentError records that an alias reference either pointed at
// an undeclared identifier or participated in a cycle with no pointer
// indirection to break it.
func UnresolvableIdentError(id Ident) LiftError {
	return LiftError{unsupported: false, id: id}
}

func (e LiftError) IsUnsupportedType() bool { return e.unsupported }

func (e LiftError) IsUnresolvableIdent() bool { return !e.unsupported }

// Ident returns the identifier an UnresolvableIdent error names; the zero
// value otherwise.
func (e LiftError) Ident() Ident { return e.id }

// Raw returns the raw type an UnsupportedType error names; nil otherwise.
func (e LiftError) Raw() RawType { return e.raw }

func (e LiftError) String() string {
	if e.unsupported {
		return "unsupported type: " + rawTypeName(e.raw)
	}
	return "unresolvable identifier: %" + string(e.id)
}

// dedupKey is the key used to collapse duplicate error reports: two
// UnsupportedType errors over raw types that print the same are considered
// the same report, as are two UnresolvableIdent errors over the same id.
func (e LiftError) dedupKey() string {
	if e.unsupported {
		return "U:" + rawTypeName(e.raw)
	}
	return "R:" + string(e.id)
}

// errorSet accumulates LiftErrors, collapsing duplicates, while preserving
// first-seen order so output is stable across runs with the same input.
type errorSet struct {
	seen  map[string]bool
	order []LiftError
}

func newErrorSet() *errorSet {
	return &errorSet{seen: make(map[string]bool)}
}

func (s *errorSet) add(e LiftError) {
	k := e.dedupKey()
	if s.seen[k] {
		return
	}
	s.seen[k] = true
	s.order = append(s.order, e)
}

func (s *errorSet) errors() []LiftError {
	return s.order
}

func (s *errorSet) isEmpty() bool { return len(s.order) == 0 }
