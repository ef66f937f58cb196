// Package vector provides Vector, a generic contiguous growable sequence with
// manual control over storage, element lifetime and random-access cursors.
//
// Storage is a single block of Cap() slots. Slots [0, Len()) hold live
// elements; the rest are raw and always hold the zero value of T.
//
// Element types may opt into lifecycle hooks by implementing Initializer,
// Cloner or Finalizer. Values handed to the vector (PushBack, Of, Insert,
// InsertValues, Set) are moved in and the caller gives up ownership. A value
// used as a prototype (Filled, ResizeWith, InsertN, AssignN) is cloned for
// every slot and stays owned by the caller.
//
// A Vector owns its storage exclusively. Assigning one Vector variable to
// another aliases that storage; use Clone to copy and Take to move.
//
// Iterators are unchecked cursors. Any operation that reallocates (growth,
// Reserve, ShrinkToFit) or shifts elements (Insert*, Emplace, Erase*)
// invalidates every iterator, pointer and Data slice previously obtained from
// the vector. Nothing detects use of an invalidated cursor.
//
// Index arguments are not validated against Len. Reading or writing outside
// [0, Len()) is a caller error, as is PopBack, Front or Back on an empty vector.
// A request for more than MaxSize slots, or an allocation the runtime cannot
// satisfy, terminates the process.
package vector
