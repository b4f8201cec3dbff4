package inspect

// Discriminator decides whether a decoder route applies to a message.
// Discriminators only look at fields, so they are cheap compared to
// unmarshaling the payload.
type Discriminator interface {
	Match(v View) bool
}

// DiscriminatorFunc adapts a function to a Discriminator.
type DiscriminatorFunc func(v View) bool

// Match implements the Discriminator interface.
func (f DiscriminatorFunc) Match(v View) bool { return f(v) }

// HasFields returns a Discriminator that matches when all paths exist.
func HasFields(paths ...string) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		for _, p := range paths {
			if !v.HasField(p) {
				return false
			}
		}
		return true
	})
}

// FieldEquals returns a Discriminator that matches when the path holds the
// given string.
func FieldEquals(path, value string) Discriminator {
	return FieldIn(path, value)
}

// FieldIn returns a Discriminator that matches when the path holds one of
// the given strings.
func FieldIn(path string, values ...string) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		s, ok := v.GetString(path)
		if !ok {
			return false
		}
		for _, want := range values {
			if s == want {
				return true
			}
		}
		return false
	})
}

// FieldNumber returns a Discriminator that matches when the path holds the
// number n, as in {"version": 2}.
func FieldNumber(path string, n float64) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		got, ok := v.GetNumber(path)
		return ok && got == n
	})
}

// And returns a Discriminator that matches when all discriminators match.
func And(ds ...Discriminator) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		for _, d := range ds {
			if !d.Match(v) {
				return false
			}
		}
		return true
	})
}

// Or returns a Discriminator that matches when any discriminator matches.
func Or(ds ...Discriminator) Discriminator {
	return DiscriminatorFunc(func(v View) bool {
		for _, d := range ds {
			if d.Match(v) {
				return true
			}
		}
		return false
	})
}

// Not returns a Discriminator that matches when d does not.
func Not(d Discriminator) Discriminator {
	return DiscriminatorFunc(func(v View) bool { return !d.Match(v) })
}
