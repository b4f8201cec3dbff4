package inspect

// The UnionN types hold exactly one of N alternatives, identified by
// position. Payload types may repeat: a Union2[int, int] has two distinct
// cases that both deliver an int.
//
// The zero value holds the first alternative's zero value.

// Union2 holds one of 2 alternatives.
type Union2[A, B any] struct {
	tag uint8
	a   A
	b   B
}

// Of2A returns a Union2 holding alternative A.
func Of2A[A, B any](v A) Union2[A, B] {
	return Union2[A, B]{tag: 0, a: v}
}

// Of2B returns a Union2 holding alternative B.
func Of2B[A, B any](v B) Union2[A, B] {
	return Union2[A, B]{tag: 1, b: v}
}

// Index returns the position of the held alternative.
func (u Union2[A, B]) Index() int { return int(u.tag) }

// GetA returns alternative A and whether it is held.
func (u Union2[A, B]) GetA() (A, bool) { return u.a, u.tag == 0 }

// GetB returns alternative B and whether it is held.
func (u Union2[A, B]) GetB() (B, bool) { return u.b, u.tag == 1 }

// Shape implements the Value interface.
func (Union2[A, B]) Shape() Shape { return ShapeUnion }

// Cases implements the Value interface.
func (Union2[A, B]) Cases() []CaseInfo {
	return []CaseInfo{
		PayloadCase[A](0, "A"),
		PayloadCase[B](1, "B"),
	}
}

// Active implements the Value interface.
func (u Union2[A, B]) Active() (int, any) {
	switch u.tag {
	case 1:
		return 1, u.b
	default:
		return 0, u.a
	}
}

// MatchUnion2 calls the handler for the held alternative. The signature
// requires one handler per alternative.
func MatchUnion2[A, B, R any](u Union2[A, B], fa func(A) R, fb func(B) R) R {
	switch u.tag {
	case 1:
		return fb(u.b)
	default:
		return fa(u.a)
	}
}

// Union3 holds one of 3 alternatives.
type Union3[A, B, C any] struct {
	tag uint8
	a   A
	b   B
	c   C
}

// Of3A returns a Union3 holding alternative A.
func Of3A[A, B, C any](v A) Union3[A, B, C] {
	return Union3[A, B, C]{tag: 0, a: v}
}

// Of3B returns a Union3 holding alternative B.
func Of3B[A, B, C any](v B) Union3[A, B, C] {
	return Union3[A, B, C]{tag: 1, b: v}
}

// Of3C returns a Union3 holding alternative C.
func Of3C[A, B, C any](v C) Union3[A, B, C] {
	return Union3[A, B, C]{tag: 2, c: v}
}

// Index returns the position of the held alternative.
func (u Union3[A, B, C]) Index() int { return int(u.tag) }

// GetA returns alternative A and whether it is held.
func (u Union3[A, B, C]) GetA() (A, bool) { return u.a, u.tag == 0 }

// GetB returns alternative B and whether it is held.
func (u Union3[A, B, C]) GetB() (B, bool) { return u.b, u.tag == 1 }

// GetC returns alternative C and whether it is held.
func (u Union3[A, B, C]) GetC() (C, bool) { return u.c, u.tag == 2 }

// Shape implements the Value interface.
func (Union3[A, B, C]) Shape() Shape { return ShapeUnion }

// Cases implements the Value interface.
func (Union3[A, B, C]) Cases() []CaseInfo {
	return []CaseInfo{
		PayloadCase[A](0, "A"),
		PayloadCase[B](1, "B"),
		PayloadCase[C](2, "C"),
	}
}

// Active implements the Value interface.
func (u Union3[A, B, C]) Active() (int, any) {
	switch u.tag {
	case 1:
		return 1, u.b
	case 2:
		return 2, u.c
	default:
		return 0, u.a
	}
}

// MatchUnion3 calls the handler for the held alternative. The signature
// requires one handler per alternative.
func MatchUnion3[A, B, C, R any](u Union3[A, B, C], fa func(A) R, fb func(B) R, fc func(C) R) R {
	switch u.tag {
	case 1:
		return fb(u.b)
	case 2:
		return fc(u.c)
	default:
		return fa(u.a)
	}
}

// Union4 holds one of 4 alternatives.
type Union4[A, B, C, D any] struct {
	tag uint8
	a   A
	b   B
	c   C
	d   D
}

// Of4A returns a Union4 holding alternative A.
func Of4A[A, B, C, D any](v A) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{tag: 0, a: v}
}

// Of4B returns a Union4 holding alternative B.
func Of4B[A, B, C, D any](v B) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{tag: 1, b: v}
}

// Of4C returns a Union4 holding alternative C.
func Of4C[A, B, C, D any](v C) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{tag: 2, c: v}
}

// Of4D returns a Union4 holding alternative D.
func Of4D[A, B, C, D any](v D) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{tag: 3, d: v}
}

// Index returns the position of the held alternative.
func (u Union4[A, B, C, D]) Index() int { return int(u.tag) }

// GetA returns alternative A and whether it is held.
func (u Union4[A, B, C, D]) GetA() (A, bool) { return u.a, u.tag == 0 }

// GetB returns alternative B and whether it is held.
func (u Union4[A, B, C, D]) GetB() (B, bool) { return u.b, u.tag == 1 }

// GetC returns alternative C and whether it is held.
func (u Union4[A, B, C, D]) GetC() (C, bool) { return u.c, u.tag == 2 }

// GetD returns alternative D and whether it is held.
func (u Union4[A, B, C, D]) GetD() (D, bool) { return u.d, u.tag == 3 }

// Shape implements the Value interface.
func (Union4[A, B, C, D]) Shape() Shape { return ShapeUnion }

// Cases implements the Value interface.
func (Union4[A, B, C, D]) Cases() []CaseInfo {
	return []CaseInfo{
		PayloadCase[A](0, "A"),
		PayloadCase[B](1, "B"),
		PayloadCase[C](2, "C"),
		PayloadCase[D](3, "D"),
	}
}

// Active implements the Value interface.
func (u Union4[A, B, C, D]) Active() (int, any) {
	switch u.tag {
	case 1:
		return 1, u.b
	case 2:
		return 2, u.c
	case 3:
		return 3, u.d
	default:
		return 0, u.a
	}
}

// MatchUnion4 calls the handler for the held alternative. The signature
// requires one handler per alternative.
func MatchUnion4[A, B, C, D, R any](u Union4[A, B, C, D], fa func(A) R, fb func(B) R, fc func(C) R, fd func(D) R) R {
	switch u.tag {
	case 1:
		return fb(u.b)
	case 2:
		return fc(u.c)
	case 3:
		return fd(u.d)
	default:
		return fa(u.a)
	}
}

// Union5 holds one of 5 alternatives.
type Union5[A, B, C, D, E any] struct {
	tag uint8
	a   A
	b   B
	c   C
	d   D
	e   E
}

// Of5A returns a Union5 holding alternative A.
func Of5A[A, B, C, D, E any](v A) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: 0, a: v}
}

// Of5B returns a Union5 holding alternative B.
func Of5B[A, B, C, D, E any](v B) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: 1, b: v}
}

// Of5C returns a Union5 holding alternative C.
func Of5C[A, B, C, D, E any](v C) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: 2, c: v}
}

// Of5D returns a Union5 holding alternative D.
func Of5D[A, B, C, D, E any](v D) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: 3, d: v}
}

// Of5E returns a Union5 holding alternative E.
func Of5E[A, B, C, D, E any](v E) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: 4, e: v}
}

// Index returns the position of the held alternative.
func (u Union5[A, B, C, D, E]) Index() int { return int(u.tag) }

// GetA returns alternative A and whether it is held.
func (u Union5[A, B, C, D, E]) GetA() (A, bool) { return u.a, u.tag == 0 }

// GetB returns alternative B and whether it is held.
func (u Union5[A, B, C, D, E]) GetB() (B, bool) { return u.b, u.tag == 1 }

// GetC returns alternative C and whether it is held.
func (u Union5[A, B, C, D, E]) GetC() (C, bool) { return u.c, u.tag == 2 }

// GetD returns alternative D and whether it is held.
func (u Union5[A, B, C, D, E]) GetD() (D, bool) { return u.d, u.tag == 3 }

// GetE returns alternative E and whether it is held.
func (u Union5[A, B, C, D, E]) GetE() (E, bool) { return u.e, u.tag == 4 }

// Shape implements the Value interface.
func (Union5[A, B, C, D, E]) Shape() Shape { return ShapeUnion }

// Cases implements the Value interface.
func (Union5[A, B, C, D, E]) Cases() []CaseInfo {
	return []CaseInfo{
		PayloadCase[A](0, "A"),
		PayloadCase[B](1, "B"),
		PayloadCase[C](2, "C"),
		PayloadCase[D](3, "D"),
		PayloadCase[E](4, "E"),
	}
}

// Active implements the Value interface.
func (u Union5[A, B, C, D, E]) Active() (int, any) {
	switch u.tag {
	case 1:
		return 1, u.b
	case 2:
		return 2, u.c
	case 3:
		return 3, u.d
	case 4:
		return 4, u.e
	default:
		return 0, u.a
	}
}

// MatchUnion5 calls the handler for the held alternative. The signature
// requires one handler per alternative.
func MatchUnion5[A, B, C, D, E, R any](u Union5[A, B, C, D, E], fa func(A) R, fb func(B) R, fc func(C) R, fd func(D) R, fe func(E) R) R {
	switch u.tag {
	case 1:
		return fb(u.b)
	case 2:
		return fc(u.c)
	case 3:
		return fd(u.d)
	case 4:
		return fe(u.e)
	default:
		return fa(u.a)
	}
}
