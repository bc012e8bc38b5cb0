package equiv

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/obinnaokechukwu/fmodgo/result"
)

type pairKey struct {
	from, to reflect.Type
}

var (
	registryMu sync.RWMutex
	casters    = make(map[pairKey]any)
	validators []func() error
)

// Register makes e reachable through Cast in both directions and includes
// it in ValidateAll. It returns e so declarations can be written inline.
// Registering a second pair for the same two types panics.
func Register[A, B Integer](e *Equivalence[A, B]) *Equivalence[A, B] {
	ab := pairKey{typeOf[A](), typeOf[B]()}
	ba := pairKey{typeOf[B](), typeOf[A]()}
	if ab.from == ab.to {
		panic(fmt.Sprintf("equiv: %s pairs %s with itself", e.name, ab.from))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := casters[ab]; dup {
		panic(fmt.Sprintf("equiv: %s: %s and %s are already paired", e.name, ab.from, ab.to))
	}
	casters[ab] = e.Forward
	casters[ba] = e.Backward
	validators = append(validators, e.Validate)
	return e
}

// Cast converts v to the paired enumeration To. The pair must have been
// registered in either direction.
func Cast[To, From Integer](v From) (To, error) {
	key := pairKey{typeOf[From](), typeOf[To]()}

	registryMu.RLock()
	c, ok := casters[key]
	registryMu.RUnlock()

	if !ok {
		var zero To
		return zero, fmt.Errorf("%w: no equivalence declared between %s and %s",
			result.ErrInvalidArgument, key.from, key.to)
	}
	return c.(func(From) (To, error))(v)
}

// ValidateAll validates every registered pair and joins the failures.
func ValidateAll() error {
	registryMu.RLock()
	vs := append([]func() error(nil), validators...)
	registryMu.RUnlock()

	var errs []error
	for _, v := range vs {
		if err := v(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
