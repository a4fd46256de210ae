package main

import "errors"

var (
	// ErrInvalidConfig is returned when weights or search limits are out of range.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrEmptyRoster is returned when a roster contains no people.
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrInvalidRoster is returned when a roster violates its structural invariants.
	ErrInvalidRoster = errors.New("invalid roster")
	// ErrUnknownPerson is returned when a friend or foe reference names nobody on the roster.
	ErrUnknownPerson = errors.New("unknown person")
	// ErrDuplicatePerson is returned when two roster entries share a name.
	ErrDuplicatePerson = errors.New("duplicate person")
)
