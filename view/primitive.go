package view

import (
	"github.com/arloliu/sbeview/traits"
)

// Limits is the presence policy of a primitive field: its valid range and the sentinel that
// means "no value" for optional fields.
type Limits[T Number] struct {
	Min  T
	Max  T
	Null T
}

// BuiltinLimits returns the SBE conventions for T: signed null is the minimum, unsigned
// null is the maximum, floating point null is NaN. uint8 gets the unsigned limits; char
// fields should use LimitsFor with their descriptor.
func BuiltinLimits[T Number]() Limits[T] {
	p := primitiveOf[T]()

	return Limits[T]{
		Min:  fromBits[T](traits.BuiltinMin(p)),
		Max:  fromBits[T](traits.BuiltinMax(p)),
		Null: fromBits[T](traits.BuiltinNull(p)),
	}
}

// LimitsFor returns the limits declared by t, falling back to the built-ins of its
// primitive. T must match the size of t.Primitive.
func LimitsFor[T Number](t *traits.Type) Limits[T] {
	return Limits[T]{
		Min:  fromBits[T](t.MinBits()),
		Max:  fromBits[T](t.MaxBits()),
		Null: fromBits[T](t.NullBits()),
	}
}

func (l *Limits[T]) inRange(v T) bool {
	return v >= l.Min && v <= l.Max
}

func (l *Limits[T]) isNull(v T) bool {
	// NaN never equals itself, so a NaN null matches any NaN.
	return v == l.Null || (v != v && l.Null != l.Null) //nolint: gocritic
}

// Required is a field that always carries a value.
type Required[T Number] struct {
	b      Bytes
	limits *Limits[T]
}

// NewRequired returns a required field at b. A nil limits uses BuiltinLimits.
func NewRequired[T Number](b Bytes, limits *Limits[T]) Required[T] {
	if limits == nil {
		l := BuiltinLimits[T]()
		limits = &l
	}

	return Required[T]{b: b, limits: limits}
}

// View returns the underlying view.
func (r Required[T]) View() Bytes { return r.b }

// Raw returns the encoded value.
func (r Required[T]) Raw() T { return Get[T](r.b, 0) }

// Get returns the value. It equals Raw.
func (r Required[T]) Get() T { return Get[T](r.b, 0) }

// Set writes v. Values outside [Min, Max] are written as is.
func (r Required[T]) Set(v T) { Put(r.b, 0, v) }

// Min returns the smallest valid value.
func (r Required[T]) Min() T { return r.limits.Min }

// Max returns the largest valid value.
func (r Required[T]) Max() T { return r.limits.Max }

// InRange reports whether the encoded value lies within [Min, Max].
func (r Required[T]) InRange() bool {
	return r.limits.inRange(r.Raw())
}

// Optional is a field whose null sentinel means "no value".
type Optional[T Number] struct {
	b      Bytes
	limits *Limits[T]
}

// NewOptional returns an optional field at b. A nil limits uses BuiltinLimits.
func NewOptional[T Number](b Bytes, limits *Limits[T]) Optional[T] {
	if limits == nil {
		l := BuiltinLimits[T]()
		limits = &l
	}

	return Optional[T]{b: b, limits: limits}
}

// View returns the underlying view.
func (o Optional[T]) View() Bytes { return o.b }

// Raw returns the encoded value, which may be the null sentinel.
func (o Optional[T]) Raw() T { return Get[T](o.b, 0) }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	v := o.Raw()
	if o.limits.isNull(v) {
		return 0, false
	}

	return v, true
}

// ValueOr returns the value, or def when the field is null.
func (o Optional[T]) ValueOr(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}

	return def
}

// IsNull reports whether the field holds the null sentinel.
func (o Optional[T]) IsNull() bool {
	return o.limits.isNull(o.Raw())
}

// Set writes v.
func (o Optional[T]) Set(v T) { Put(o.b, 0, v) }

// Clear writes the null sentinel.
func (o Optional[T]) Clear() { Put(o.b, 0, o.limits.Null) }

// Min returns the smallest valid value.
func (o Optional[T]) Min() T { return o.limits.Min }

// Max returns the largest valid value.
func (o Optional[T]) Max() T { return o.limits.Max }

// Null returns the null sentinel.
func (o Optional[T]) Null() T { return o.limits.Null }

// InRange reports whether the field holds a value within [Min, Max].
func (o Optional[T]) InRange() bool {
	v := o.Raw()
	return !o.limits.isNull(v) && o.limits.inRange(v)
}
