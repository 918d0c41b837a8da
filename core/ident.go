// This file implements identity tagging: the process-wide monotonic id
// counter and the Tagged wrapper that attaches an id to an Uncertain.
package core

import "sync/atomic"

// idCounter backs NextID. Incremented atomically so ids stay distinct
// and strictly increasing under concurrent tagging.
var idCounter uint64

// NextID returns a fresh positive identity, strictly greater than every
// identity returned before it. There is no reset.
func NextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}

// Tagged is an Uncertain decorated with a tracking identity. The wrapper
// is plain composition: the value behaves exactly like the embedded
// Uncertain, plus an id.
//
// Copying a Tagged copies the id — the copy refers to the same tracked
// variable. Only Renew mints a new identity; Untrack clears it to the
// reserved 0 ("untracked") sentinel.
type Tagged struct {
	Uncertain
	id uint64
}

// Tag wraps u with a freshly assigned identity.
func Tag(u Uncertain) Tagged {
	return Tagged{Uncertain: u, id: NextID()}
}

// Untracked wraps u without assigning an identity (id 0). Used for
// results that are not participating in store-based tracking.
func Untracked(u Uncertain) Tagged {
	return Tagged{Uncertain: u}
}

// ID returns the tracking identity; 0 means untracked.
func (t Tagged) ID() uint64 { return t.id }

// Renew replaces the identity with a fresh one from the counter. The
// value is afterwards a distinct tracked variable.
func (t *Tagged) Renew() { t.id = NextID() }

// Untrack clears the identity to 0.
func (t *Tagged) Untrack() { t.id = 0 }
