package ecs

import "reflect"

type paramKind int

const (
	paramKindComponent paramKind = iota
	paramKindResource
	paramKindCommands
)

// paramAccess is one parameter's (kind, type, mutability), used to validate
// a system's signature at registration time without touching a live World.
type paramAccess struct {
	kind    paramKind
	typ     reflect.Type
	mutable bool
}

// Param is satisfied by every type a system function may take as a
// parameter: Res[T], ResMut[T], *Commands, and Query1..Query4. describeParam
// must work on the zero value (no World); injectAny builds the live,
// per-invocation value.
type Param interface {
	describeParam() []paramAccess
	injectAny(w *World) Param
}

// Res is a read-only snapshot of resource T, copied out at invocation time.
type Res[T any] struct{ value T }

func (r Res[T]) Get() T { return r.value }

func (Res[T]) describeParam() []paramAccess {
	return []paramAccess{{kind: paramKindResource, typ: reflect.TypeFor[T](), mutable: false}}
}

func (Res[T]) injectAny(w *World) Param {
	v, ok := getResource[T](w.resources)
	if !ok {
		panic(errResourceNotFound(reflect.TypeFor[T]().String()))
	}
	return Res[T]{value: v}
}

// ResMut is a mutable handle onto resource T; writes through Get() are
// visible to every later reader in the same tick.
type ResMut[T any] struct{ ptr *T }

func (r ResMut[T]) Get() *T { return r.ptr }

func (ResMut[T]) describeParam() []paramAccess {
	return []paramAccess{{kind: paramKindResource, typ: reflect.TypeFor[T](), mutable: true}}
}

func (ResMut[T]) injectAny(w *World) Param {
	ptr, ok := getResourcePtr[T](w.resources)
	if !ok {
		panic(errResourceNotFound(reflect.TypeFor[T]().String()))
	}
	return ResMut[T]{ptr: ptr}
}

func (*Query1[A]) describeParam() []paramAccess {
	var a A
	return collectParamAccess(a)
}
func (*Query1[A]) injectAny(w *World) Param { return NewQuery1[A](w) }

func (*Query2[A, B]) describeParam() []paramAccess {
	var a A
	var b B
	return append(collectParamAccess(a), collectParamAccess(b)...)
}
func (*Query2[A, B]) injectAny(w *World) Param { return NewQuery2[A, B](w) }

func (*Query3[A, B, C]) describeParam() []paramAccess {
	var a A
	var b B
	var c C
	out := collectParamAccess(a)
	out = append(out, collectParamAccess(b)...)
	out = append(out, collectParamAccess(c)...)
	return out
}
func (*Query3[A, B, C]) injectAny(w *World) Param { return NewQuery3[A, B, C](w) }

func (*Query4[A, B, C, D]) describeParam() []paramAccess {
	var a A
	var b B
	var c C
	var d D
	out := collectParamAccess(a)
	out = append(out, collectParamAccess(b)...)
	out = append(out, collectParamAccess(c)...)
	out = append(out, collectParamAccess(d)...)
	return out
}
func (*Query4[A, B, C, D]) injectAny(w *World) Param { return NewQuery4[A, B, C, D](w) }

func collectParamAccess(c claim) []paramAccess {
	ca, ok := claimAccess(c)
	if !ok {
		return nil
	}
	return []paramAccess{{kind: paramKindComponent, typ: ca.typ, mutable: ca.mutable}}
}

func (*Commands) describeParam() []paramAccess {
	return []paramAccess{{kind: paramKindCommands}}
}
// injectAny binds to the World's single shared buffer rather than a fresh
// one: ops queued through a system's *Commands parameter must land in the
// same buffer World.Update/Render/Startup/Shutdown applies at the next
// stage boundary.
func (*Commands) injectAny(w *World) Param { return w.commands }

// validateParamAccess applies spec.md §4.7's registration-time rule: a
// system's combined parameter list may not claim a component type more than
// once with any claim mutable, nor a resource type with more than one
// mutable claim or a mix of mutable and immutable claims. Commands carries
// no restriction.
func validateParamAccess(all []paramAccess) error {
	var comps []componentAccess
	byRes := make(map[reflect.Type][]bool)
	for _, a := range all {
		switch a.kind {
		case paramKindComponent:
			comps = append(comps, componentAccess{typ: a.typ, mutable: a.mutable})
		case paramKindResource:
			byRes[a.typ] = append(byRes[a.typ], a.mutable)
		}
	}
	if err := checkAliasing(comps); err != nil {
		return err
	}
	for t, muts := range byRes {
		if len(muts) <= 1 {
			continue
		}
		mutableCount, immutableCount := 0, 0
		for _, m := range muts {
			if m {
				mutableCount++
			} else {
				immutableCount++
			}
		}
		if mutableCount > 1 || (mutableCount >= 1 && immutableCount >= 1) {
			return errAliasViolation(t.String())
		}
	}
	return nil
}

// System is a named unit of work bound to a schedule stage. Its parameter
// values are rebuilt from their descriptors on every invocation (spec.md
// §4.7), so a system body always sees the world as of that call.
type System struct {
	title string
	run   func(w *World)
}

// Name identifies the system for logging and test assertions.
func (s System) Name() string { return s.title }

// System0 wraps a system taking no parameters.
func System0(title string, fn func()) System {
	return System{title: title, run: func(w *World) { fn() }}
}

// System1 wraps a system taking a single typed parameter.
func System1[P1 Param](title string, fn func(P1)) System {
	var z1 P1
	if err := validateParamAccess(z1.describeParam()); err != nil {
		panic(err)
	}
	return System{title: title, run: func(w *World) {
		var p1 P1
		fn(p1.injectAny(w).(P1))
	}}
}

// System2 wraps a system taking two typed parameters.
func System2[P1 Param, P2 Param](title string, fn func(P1, P2)) System {
	var z1 P1
	var z2 P2
	all := append(z1.describeParam(), z2.describeParam()...)
	if err := validateParamAccess(all); err != nil {
		panic(err)
	}
	return System{title: title, run: func(w *World) {
		var p1 P1
		var p2 P2
		fn(p1.injectAny(w).(P1), p2.injectAny(w).(P2))
	}}
}

// System3 wraps a system taking three typed parameters.
func System3[P1 Param, P2 Param, P3 Param](title string, fn func(P1, P2, P3)) System {
	var z1 P1
	var z2 P2
	var z3 P3
	all := append(append(z1.describeParam(), z2.describeParam()...), z3.describeParam()...)
	if err := validateParamAccess(all); err != nil {
		panic(err)
	}
	return System{title: title, run: func(w *World) {
		var p1 P1
		var p2 P2
		var p3 P3
		fn(p1.injectAny(w).(P1), p2.injectAny(w).(P2), p3.injectAny(w).(P3))
	}}
}

// System4 wraps a system taking four typed parameters.
func System4[P1 Param, P2 Param, P3 Param, P4 Param](title string, fn func(P1, P2, P3, P4)) System {
	var z1 P1
	var z2 P2
	var z3 P3
	var z4 P4
	all := append(append(append(z1.describeParam(), z2.describeParam()...), z3.describeParam()...), z4.describeParam()...)
	if err := validateParamAccess(all); err != nil {
		panic(err)
	}
	return System{title: title, run: func(w *World) {
		var p1 P1
		var p2 P2
		var p3 P3
		var p4 P4
		fn(p1.injectAny(w).(P1), p2.injectAny(w).(P2), p3.injectAny(w).(P3), p4.injectAny(w).(P4))
	}}
}
