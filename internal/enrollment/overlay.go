package enrollment

import (
	"errors"
	"sort"
)

// OverlayState tracks the lifecycle of one roster edit session. An overlay
// starts pending, may be mutated and flattened while pending, and is marked
// applied or rolled back exactly once when the save settles.
type OverlayState string

const (
	StatePending    OverlayState = "pending"
	StateApplied    OverlayState = "applied"
	StateRolledBack OverlayState = "rolled_back"
)

// ErrOverlaySettled is returned when a mutated or flattened overlay has
// already been applied or rolled back.
var ErrOverlaySettled = errors.New("roster overlay already settled")

// Overlay buffers roster changes for one class edit session:
// committed members ± pending additions/removals. Nothing is persisted
// until SavePatch output is sent in a single request; discarding a pending
// overlay has no side effects.
type Overlay struct {
	state     OverlayState
	committed map[int]struct{}
	adds      map[int]struct{}
	removes   map[int]struct{}
}

// NewOverlay opens an edit session over the committed roster of a class.
func NewOverlay(committed []int) *Overlay {
	o := &Overlay{
		state:     StatePending,
		committed: make(map[int]struct{}, len(committed)),
		adds:      make(map[int]struct{}),
		removes:   make(map[int]struct{}),
	}
	for _, id := range committed {
		o.committed[id] = struct{}{}
	}
	return o
}

// State reports where the overlay is in its transaction lifecycle.
func (o *Overlay) State() OverlayState { return o.state }

// Contains reports whether the student is a current member: committed and
// not pending removal, or pending addition.
func (o *Overlay) Contains(studentID int) bool {
	if _, pending := o.adds[studentID]; pending {
		return true
	}
	if _, removed := o.removes[studentID]; removed {
		return false
	}
	_, ok := o.committed[studentID]
	return ok
}

// Committed reports whether the student was a member when the session opened.
func (o *Overlay) Committed(studentID int) bool {
	_, ok := o.committed[studentID]
	return ok
}

// Add records a pending addition. It is a no-op for current members and does
// not run the conflict check itself; callers decide with CanEnroll first.
func (o *Overlay) Add(studentID int) error {
	if o.state != StatePending {
		return ErrOverlaySettled
	}
	if o.Contains(studentID) {
		return nil
	}
	if _, removed := o.removes[studentID]; removed {
		// Re-adding a member removed earlier in the session cancels the removal.
		delete(o.removes, studentID)
		return nil
	}
	o.adds[studentID] = struct{}{}
	return nil
}

// Remove discards a pending addition, or records a pending removal when the
// student was committed at session start.
func (o *Overlay) Remove(studentID int) error {
	if o.state != StatePending {
		return ErrOverlaySettled
	}
	if _, pending := o.adds[studentID]; pending {
		delete(o.adds, studentID)
		return nil
	}
	if _, ok := o.committed[studentID]; ok {
		o.removes[studentID] = struct{}{}
	}
	return nil
}

// CurrentMembers returns the member set as of this session, sorted by id.
func (o *Overlay) CurrentMembers() []int {
	members := make([]int, 0, len(o.committed)+len(o.adds))
	for id := range o.committed {
		if _, removed := o.removes[id]; !removed {
			members = append(members, id)
		}
	}
	for id := range o.adds {
		members = append(members, id)
	}
	sort.Ints(members)
	return members
}

// SavePatch flattens the session into the single add/remove delta sent to
// the repository on explicit save. Only a pending overlay may be flattened.
func (o *Overlay) SavePatch() (add, remove []int, err error) {
	if o.state != StatePending {
		return nil, nil, ErrOverlaySettled
	}
	for id := range o.adds {
		add = append(add, id)
	}
	for id := range o.removes {
		remove = append(remove, id)
	}
	sort.Ints(add)
	sort.Ints(remove)
	return add, remove, nil
}

// MarkApplied settles the overlay after a successful save.
func (o *Overlay) MarkApplied() error {
	if o.state != StatePending {
		return ErrOverlaySettled
	}
	o.state = StateApplied
	return nil
}

// MarkRolledBack settles the overlay after a failed save, so the caller can
// rebuild a fresh session from the still-committed roster.
func (o *Overlay) MarkRolledBack() error {
	if o.state != StatePending {
		return ErrOverlaySettled
	}
	o.state = StateRolledBack
	return nil
}
