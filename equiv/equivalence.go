package equiv

import (
	"fmt"
	"sort"
	"sync"

	"github.com/obinnaokechukwu/fmodgo/result"
)

// Integer is the set of underlying types an enumeration may have.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Option configures a declared pair.
type Option func(*options)

type options struct {
	flags bool
}

// Flags marks both enumerations as bit sets. A value that is not a member
// itself still casts when every set bit belongs to a member.
func Flags() Option {
	return func(o *options) { o.flags = true }
}

// Equivalence pairs enumeration A with enumeration B. Create it with Declare.
type Equivalence[A, B Integer] struct {
	name     string
	membersA func() []A
	membersB func() []B
	opts     options

	once sync.Once
	err  error
	toB  map[uint64]B
	toA  map[uint64]A
	bits uint64 // union of all member bits, flags mode only
}

// Declare pairs A and B. membersA and membersB must return every named
// member of their enumeration. Nothing is validated until first use.
func Declare[A, B Integer](name string, membersA func() []A, membersB func() []B, opts ...Option) *Equivalence[A, B] {
	e := &Equivalence[A, B]{name: name, membersA: membersA, membersB: membersB}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Name returns the name the pair was declared with.
func (e *Equivalence[A, B]) Name() string {
	return e.name
}

// Validate checks the pair once and returns the memoized outcome.
func (e *Equivalence[A, B]) Validate() error {
	e.once.Do(e.validate)
	return e.err
}

func (e *Equivalence[A, B]) validate() {
	toB := make(map[uint64]B)
	for _, m := range e.membersB() {
		toB[uint64(m)] = m
	}
	toA := make(map[uint64]A)
	for _, m := range e.membersA() {
		toA[uint64(m)] = m
	}

	cfg := &ConfigurationError{Pair: e.name, CountA: len(toA), CountB: len(toB)}
	for _, k := range sortedKeys(toA) {
		if _, ok := toB[k]; !ok {
			cfg.MissingB = append(cfg.MissingB, describe(toA[k]))
		}
	}
	for _, k := range sortedKeys(toB) {
		if _, ok := toA[k]; !ok {
			cfg.MissingA = append(cfg.MissingA, describe(toB[k]))
		}
	}
	if cfg.CountA != cfg.CountB || len(cfg.MissingA) > 0 || len(cfg.MissingB) > 0 {
		e.err = cfg
		return
	}

	e.toA, e.toB = toA, toB
	for k := range toA {
		e.bits |= k
	}
}

// Forward casts a value of A to the member of B with the same underlying
// value.
func (e *Equivalence[A, B]) Forward(v A) (B, error) {
	if err := e.Validate(); err != nil {
		var zero B
		return zero, err
	}
	return lookup(e, v, e.toB)
}

// Backward casts a value of B to the member of A with the same underlying
// value.
func (e *Equivalence[A, B]) Backward(v B) (A, error) {
	if err := e.Validate(); err != nil {
		var zero A
		return zero, err
	}
	return lookup(e, v, e.toA)
}

// MustForward is like Forward but panics on error. Use it only with
// constants known to be members.
func (e *Equivalence[A, B]) MustForward(v A) B {
	out, err := e.Forward(v)
	if err != nil {
		panic(err)
	}
	return out
}

// lookup must only run after a successful Validate.
func lookup[From, To, A, B Integer](e *Equivalence[A, B], v From, table map[uint64]To) (To, error) {
	var zero To
	key := uint64(v)
	if out, ok := table[key]; ok {
		return out, nil
	}
	if e.opts.flags && len(table) > 0 && key&^e.bits == 0 {
		return To(key), nil
	}
	return zero, fmt.Errorf("%w: %s has no member with value %#x", result.ErrInvalidArgument, e.name, key)
}

func sortedKeys[V any](m map[uint64]V) []uint64 {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func describe[T Integer](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return fmt.Sprintf("%s (%#x)", s.String(), uint64(v))
	}
	return fmt.Sprintf("%#x", uint64(v))
}
