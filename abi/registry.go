package abi

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Registry resolves canonical type names to handlers. Parsed composite
// types are cached, so repeated lookups return the same handler. A
// Registry is safe for concurrent use.
type Registry struct {
	cfg     ArrayConfig
	types   map[string]Type
	typesMu sync.RWMutex
}

// DefaultRegistry builds arrays with DefaultArrayConfig.
var DefaultRegistry = NewRegistry(DefaultArrayConfig)

func NewRegistry(cfg ArrayConfig) *Registry {
	r := &Registry{
		cfg:   cfg,
		types: make(map[string]Type),
	}
	for _, t := range elementaryTypes() {
		r.types[t.Name()] = t
	}
	r.types["uint"] = r.types["uint256"]
	r.types["int"] = r.types["int256"]
	return r
}

func elementaryTypes() []Type {
	out := []Type{Bool, AddressT, Bytes, String}
	for bits := 8; bits <= 256; bits += 8 {
		out = append(out, NewUInt(bits), NewInt(bits))
	}
	for size := 1; size <= WordSize; size++ {
		out = append(out, NewFixedBytes(size))
	}
	return out
}

// Register adds t under its canonical name, replacing any handler already
// registered under that name.
func (r *Registry) Register(t Type) {
	r.typesMu.Lock()
	defer r.typesMu.Unlock()
	r.types[t.Name()] = t
}

// Lookup returns the handler registered or cached under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	r.typesMu.RLock()
	defer r.typesMu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Names returns every registered and cached type name in sorted order.
func (r *Registry) Names() []string {
	r.typesMu.RLock()
	defer r.typesMu.RUnlock()
	out := make([]string, 0, len(r.types))
	for name := range r.types {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Parse resolves name, building array and tuple handlers as needed.
func (r *Registry) Parse(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if t, ok := r.Lookup(name); ok {
		return t, nil
	}

	t, err := r.parse(name)
	if err != nil {
		return nil, err
	}

	r.typesMu.Lock()
	defer r.typesMu.Unlock()
	// another goroutine may have won the race
	if existing, ok := r.types[name]; ok {
		return existing, nil
	}
	r.types[name] = t
	return t, nil
}

// MustParse is like Parse but panics on error.
func (r *Registry) MustParse(name string) Type {
	t, err := r.Parse(name)
	if err != nil {
		panic(err)
	}
	return t
}

func (r *Registry) parse(name string) (Type, error) {
	switch {
	case name == "":
		return nil, errors.Wrap(ErrUnknownType, "empty type name")
	case strings.HasSuffix(name, "[]"):
		elem, err := r.Parse(name[:len(name)-2])
		if err != nil {
			return nil, err
		}
		return NewConfiguredArray(elem, r.cfg), nil
	case strings.HasSuffix(name, "]"):
		return nil, errors.Wrapf(ErrUnknownType, "fixed-size arrays are not supported: %s", name)
	case strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")"):
		parts, err := splitTupleMembers(name[1 : len(name)-1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid tuple %s", name)
		}
		members := make([]Type, len(parts))
		for i, part := range parts {
			m, err := r.Parse(part)
			if err != nil {
				return nil, err
			}
			members[i] = m
		}
		return NewTuple(members...), nil
	default:
		return nil, errors.Wrap(ErrUnknownType, name)
	}
}

// splitTupleMembers splits s on commas that are not nested inside
// parentheses.
func splitTupleMembers(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []string
	var depth int
	var start int
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errors.Wrap(ErrUnknownType, "unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.Wrap(ErrUnknownType, "unbalanced parentheses")
	}
	out = append(out, s[start:])

	for i, part := range out {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.Wrap(ErrUnknownType, fmt.Sprintf("empty member %d", i))
		}
		out[i] = part
	}
	return out, nil
}
