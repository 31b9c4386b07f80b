package dispatch

// entity constrains diffing to pointer-shaped records with a stable id.
type entity interface {
	comparable
	EntityID() string
}

type op int

const (
	opNone op = iota
	opUpsert
	opDelete
)

type change[T entity] struct {
	op       op
	upsert   T
	deleteID string
}

// diff infers the single mutation a whole-collection replacement represents.
// A shorter collection is a deletion of the one element whose identity is
// missing; otherwise the first element not present in the old collection by
// identity (a new record, or an edited copy carried under the same id) is an
// upsert. Identical collections are a no-op.
//
// When a replacement both adds and edits, only the first detected change is
// reported; the full collection is still committed locally. Callers that need
// multiple writes must use the explicit intent methods instead.
func diff[T entity](old, cur []T) change[T] {
	if len(cur) < len(old) {
		kept := make(map[T]struct{}, len(cur))
		for _, e := range cur {
			kept[e] = struct{}{}
		}
		for _, e := range old {
			if _, ok := kept[e]; !ok {
				return change[T]{op: opDelete, deleteID: e.EntityID()}
			}
		}
		return change[T]{}
	}

	known := make(map[T]struct{}, len(old))
	for _, e := range old {
		known[e] = struct{}{}
	}
	for _, e := range cur {
		if _, ok := known[e]; !ok {
			return change[T]{op: opUpsert, upsert: e}
		}
	}
	return change[T]{}
}

// upsertByID is an updater that replaces the element carrying e's id, or
// appends e when the id is new.
func upsertByID[T entity](e T) func([]T) []T {
	return func(cur []T) []T {
		for i, x := range cur {
			if x.EntityID() == e.EntityID() {
				cur[i] = e
				return cur
			}
		}
		return append(cur, e)
	}
}

// removeByID is an updater that drops the element carrying id.
func removeByID[T entity](id string) func([]T) []T {
	return func(cur []T) []T {
		out := make([]T, 0, len(cur))
		for _, x := range cur {
			if x.EntityID() != id {
				out = append(out, x)
			}
		}
		return out
	}
}
