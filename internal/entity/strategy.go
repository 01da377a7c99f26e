package entity

import (
	"time"
)

// Strategy is one way of reading a field, it returns false when it could not
// find anything.
type Strategy[T any] func(p Parsable) (T, bool)

// FirstOf returns the result of the first strategy that resolves.
func FirstOf[T any](p Parsable, strategies ...Strategy[T]) (T, bool) {
	for _, strategy := range strategies {
		value, ok := strategy(p)
		if ok {
			return value, true
		}
	}
	var zero T
	return zero, false
}

// TextOf reads a Field as text.
func TextOf(field Field) Strategy[string] {
	return func(p Parsable) (string, bool) {
		value, ok := p.Resolve(field)
		return value.Text, ok
	}
}

// DateOf reads a Field as a date.
func DateOf(field Field) Strategy[time.Time] {
	field.ParseDate = true
	return func(p Parsable) (time.Time, bool) {
		value, ok := p.Resolve(field)
		return value.Date, ok
	}
}

// CurrencyOf reads a Field and converts it with ToCurrency.
func CurrencyOf(field Field) Strategy[float64] {
	return func(p Parsable) (float64, bool) {
		value, ok := p.Resolve(field)
		if !ok {
			return 0, false
		}
		return ToCurrency(value.Text)
	}
}
