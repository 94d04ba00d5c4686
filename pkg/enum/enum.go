package enum

import (
	"fmt"
	"math"
	"reflect"
)

type registry[T comparable] struct {
	members []T
	toEnum  map[string]T
	rank    map[T]int
}

var registries = map[string]any{}

func lookup[T comparable]() (*registry[T], bool) {
	var zero T
	r, ok := registries[reflect.TypeOf(zero).Name()].(*registry[T])
	return r, ok
}

// New registers value as a member of its enum type and returns it.
// Registration order is preserved and exposed through Rank, so declaring
// members from most to least significant gives them a total order for free.
func New[T comparable](value T) T {
	name := reflect.TypeOf(value).Name()
	r, ok := registries[name].(*registry[T])
	if !ok {
		r = &registry[T]{toEnum: map[string]T{}, rank: map[T]int{}}
		registries[name] = r
	}

	if _, ok := r.rank[value]; !ok {
		r.rank[value] = len(r.members)
		r.members = append(r.members, value)
	}

	r.toEnum[reflect.ValueOf(value).String()] = value
	return value
}

// ToEnum resolves a raw string to a registered member.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	r, ok := lookup[T]()
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	v, ok := r.toEnum[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return v, nil
}

// Valid reports whether value was registered with New.
func Valid[T comparable](value T) bool {
	r, ok := lookup[T]()
	if !ok {
		return false
	}

	_, ok = r.rank[value]
	return ok
}

// Rank returns the registration position of value. Unregistered values rank
// after every member.
func Rank[T comparable](value T) int {
	r, ok := lookup[T]()
	if !ok {
		return math.MaxInt
	}

	pos, ok := r.rank[value]
	if !ok {
		return math.MaxInt
	}

	return pos
}
