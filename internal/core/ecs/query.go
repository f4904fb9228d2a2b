package ecs

import "reflect"

// claim is the compile-time marker a query parameter slot satisfies: either
// Ref[T] (immutable), RefMut[T] (mutable) or EntityClaim (the owning
// handle, read-only). Go has no variadic generics, so query arity is
// bounded to four claims (Query1..Query4) rather than open-ended — a
// deliberate, documented resolution of the "variadic query" design note,
// not a silent limitation.
type claim interface {
	claimType() reflect.Type // nil for EntityClaim: it names no column
	claimMutable() bool
	bindAny(v any) claim
}

// Ref is an immutable borrow of component T within a query (spec.md §4.4).
type Ref[T any] struct{ ptr *T }

// Get returns the borrowed component. Callers must not mutate through it;
// Go cannot enforce that statically the way the source language's Ref
// wrapper does, so this is a convention backed by RefMut being the only
// claim that yields a pointer meant for writes.
func (r Ref[T]) Get() *T { return r.ptr }

func (Ref[T]) claimType() reflect.Type   { return reflect.TypeFor[T]() }
func (Ref[T]) claimMutable() bool        { return false }
func (Ref[T]) bindAny(v any) claim       { return Ref[T]{ptr: v.(*T)} }

// RefMut is a mutable borrow of component T within a query (spec.md §4.4).
type RefMut[T any] struct{ ptr *T }

// Get returns a pointer to the live component row; writes through it are
// visible to every subsequent reader for the rest of the tick.
func (r RefMut[T]) Get() *T { return r.ptr }

func (RefMut[T]) claimType() reflect.Type { return reflect.TypeFor[T]() }
func (RefMut[T]) claimMutable() bool      { return true }
func (RefMut[T]) bindAny(v any) claim     { return RefMut[T]{ptr: v.(*T)} }

// EntityClaim yields the owning entity handle; it claims no component type
// so it never participates in aliasing or column-picking.
type EntityClaim struct{ entity Entity }

// Entity returns the handle this row belongs to.
func (e EntityClaim) Entity() Entity { return e.entity }

func (EntityClaim) claimType() reflect.Type { return nil }
func (EntityClaim) claimMutable() bool      { return false }
func (EntityClaim) bindAny(v any) claim     { return EntityClaim{entity: v.(Entity)} }

// componentAccess describes one claim's (type, mutability) for alias
// checking, independent of any live world state.
type componentAccess struct {
	typ     reflect.Type
	mutable bool
}

func claimAccess(c claim) (componentAccess, bool) {
	t := c.claimType()
	if t == nil {
		return componentAccess{}, false
	}
	return componentAccess{typ: t, mutable: c.claimMutable()}, true
}

// checkAliasing applies spec.md §4.4's rule: no two claims may name the
// same component type with at least one of them mutable.
func checkAliasing(accesses []componentAccess) error {
	byType := make(map[reflect.Type][]bool) // type -> mutability of each claim
	for _, a := range accesses {
		byType[a.typ] = append(byType[a.typ], a.mutable)
	}
	for t, muts := range byType {
		if len(muts) <= 1 {
			continue
		}
		for _, m := range muts {
			if m {
				return errAliasViolation(t.String())
			}
		}
	}
	return nil
}

// pickColumn chooses the smallest column among the claimed component types,
// per spec.md §4.4's pick algorithm. A claim type with no registered column
// means zero entities can ever match; reports that via ok=false.
func pickColumn(store *componentStore, types []reflect.Type) (col anyColumn, ok bool) {
	for _, t := range types {
		if t == nil {
			continue
		}
		c, found := store.columns[t]
		if !found {
			return nil, false
		}
		if col == nil || c.len() < col.len() {
			col = c
		}
	}
	return col, true
}

// probeRow checks whether every claimed component type (other than Entity
// claims) is present on id, and returns the bound claim for each slot.
func probeRow(store *componentStore, world *World, id uint64, types []reflect.Type, claims []claim) ([]claim, bool) {
	out := make([]claim, len(claims))
	for i, t := range types {
		if t == nil {
			out[i] = claims[i].bindAny(entityOf(world, id))
			continue
		}
		col, ok := store.columns[t]
		if !ok {
			return nil, false
		}
		ptr, ok := col.ptrAny(id)
		if !ok {
			return nil, false
		}
		out[i] = claims[i].bindAny(ptr)
	}
	return out, true
}

// entityOf reconstructs a live handle for id using its current generation.
func entityOf(w *World, id uint64) Entity {
	return Entity{id: id, gen: w.entities.slots[id].generation, world: w}
}

// ==============================================
// Fixed-arity query builders
// ==============================================

// Query1 iterates every live entity possessing the single claimed component.
type Query1[A claim] struct {
	world *World
	ids   []uint64
	cur   int
}

// NewQuery1 constructs a restartable cursor over the world's matching rows.
func NewQuery1[A claim](w *World) *Query1[A] {
	var a A
	types := []reflect.Type{a.claimType()}
	if err := checkAliasing(collectAccess(a)); err != nil {
		panic(err)
	}
	return &Query1[A]{world: w, ids: candidateIDs(w, types)}
}

func (q *Query1[A]) Next() (A, bool) {
	var a A
	types := []reflect.Type{a.claimType()}
	for q.cur < len(q.ids) {
		id := q.ids[q.cur]
		q.cur++
		bound, ok := probeRow(q.world.components, q.world, id, types, []claim{a})
		if !ok {
			continue
		}
		return bound[0].(A), true
	}
	return a, false
}

// Reset rewinds the cursor so the same snapshot can be walked again.
func (q *Query1[A]) Reset() { q.cur = 0 }

// Query2 iterates every live entity possessing both claimed components.
type Query2[A claim, B claim] struct {
	world *World
	ids   []uint64
	cur   int
}

func NewQuery2[A claim, B claim](w *World) *Query2[A, B] {
	var a A
	var b B
	types := []reflect.Type{a.claimType(), b.claimType()}
	if err := checkAliasing(append(collectAccess(a), collectAccess(b)...)); err != nil {
		panic(err)
	}
	return &Query2[A, B]{world: w, ids: candidateIDs(w, types)}
}

func (q *Query2[A, B]) Next() (A, B, bool) {
	var a A
	var b B
	types := []reflect.Type{a.claimType(), b.claimType()}
	for q.cur < len(q.ids) {
		id := q.ids[q.cur]
		q.cur++
		bound, ok := probeRow(q.world.components, q.world, id, types, []claim{a, b})
		if !ok {
			continue
		}
		return bound[0].(A), bound[1].(B), true
	}
	return a, b, false
}

func (q *Query2[A, B]) Reset() { q.cur = 0 }

// Query3 iterates every live entity possessing all three claimed components.
type Query3[A claim, B claim, C claim] struct {
	world *World
	ids   []uint64
	cur   int
}

func NewQuery3[A claim, B claim, C claim](w *World) *Query3[A, B, C] {
	var a A
	var b B
	var c C
	types := []reflect.Type{a.claimType(), b.claimType(), c.claimType()}
	all := append(append(collectAccess(a), collectAccess(b)...), collectAccess(c)...)
	if err := checkAliasing(all); err != nil {
		panic(err)
	}
	return &Query3[A, B, C]{world: w, ids: candidateIDs(w, types)}
}

func (q *Query3[A, B, C]) Next() (A, B, C, bool) {
	var a A
	var b B
	var c C
	types := []reflect.Type{a.claimType(), b.claimType(), c.claimType()}
	for q.cur < len(q.ids) {
		id := q.ids[q.cur]
		q.cur++
		bound, ok := probeRow(q.world.components, q.world, id, types, []claim{a, b, c})
		if !ok {
			continue
		}
		return bound[0].(A), bound[1].(B), bound[2].(C), true
	}
	return a, b, c, false
}

func (q *Query3[A, B, C]) Reset() { q.cur = 0 }

// Query4 iterates every live entity possessing all four claimed components.
type Query4[A claim, B claim, C claim, D claim] struct {
	world *World
	ids   []uint64
	cur   int
}

func NewQuery4[A claim, B claim, C claim, D claim](w *World) *Query4[A, B, C, D] {
	var a A
	var b B
	var c C
	var d D
	types := []reflect.Type{a.claimType(), b.claimType(), c.claimType(), d.claimType()}
	all := append(append(append(collectAccess(a), collectAccess(b)...), collectAccess(c)...), collectAccess(d)...)
	if err := checkAliasing(all); err != nil {
		panic(err)
	}
	return &Query4[A, B, C, D]{world: w, ids: candidateIDs(w, types)}
}

func (q *Query4[A, B, C, D]) Next() (A, B, C, D, bool) {
	var a A
	var b B
	var c C
	var d D
	types := []reflect.Type{a.claimType(), b.claimType(), c.claimType(), d.claimType()}
	for q.cur < len(q.ids) {
		id := q.ids[q.cur]
		q.cur++
		bound, ok := probeRow(q.world.components, q.world, id, types, []claim{a, b, c, d})
		if !ok {
			continue
		}
		return bound[0].(A), bound[1].(B), bound[2].(C), bound[3].(D), true
	}
	return a, b, c, d, false
}

func (q *Query4[A, B, C, D]) Reset() { q.cur = 0 }

func collectAccess(c claim) []componentAccess {
	if a, ok := claimAccess(c); ok {
		return []componentAccess{a}
	}
	return nil
}

// candidateIDs implements the pick-smallest-column half of spec.md §4.4: if
// every claim is an EntityClaim, walk all live entities; otherwise walk the
// smallest claimed column and let probeRow filter the rest.
func candidateIDs(w *World, types []reflect.Type) []uint64 {
	col, ok := pickColumn(w.components, types)
	if !ok {
		return nil
	}
	if col == nil {
		ids := make([]uint64, 0, w.entities.count())
		for _, e := range w.entities.living() {
			ids = append(ids, e.id)
		}
		return ids
	}
	ids := make([]uint64, col.len())
	for i := range ids {
		ids[i] = col.entityAt(i)
	}
	return ids
}
