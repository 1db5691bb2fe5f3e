package enrollment

import (
	"errors"
	"reflect"
	"testing"
)

func TestOverlayAddIsNoOpForCurrentMembers(t *testing.T) {
	o := NewOverlay([]int{1, 2})

	if err := o.Add(1); err != nil {
		t.Fatalf("Add(1) error: %v", err)
	}
	if err := o.Add(3); err != nil {
		t.Fatalf("Add(3) error: %v", err)
	}
	if err := o.Add(3); err != nil {
		t.Fatalf("second Add(3) error: %v", err)
	}

	add, remove, err := o.SavePatch()
	if err != nil {
		t.Fatalf("SavePatch error: %v", err)
	}
	if !reflect.DeepEqual(add, []int{3}) {
		t.Errorf("add = %v, want [3]", add)
	}
	if len(remove) != 0 {
		t.Errorf("remove = %v, want empty", remove)
	}
}

func TestOverlayRemoveDistinguishesPendingFromCommitted(t *testing.T) {
	o := NewOverlay([]int{1})
	o.Add(2)

	// Removing a pending add just discards it.
	o.Remove(2)
	// Removing a committed member records a pending removal.
	o.Remove(1)
	// Removing a stranger does nothing.
	o.Remove(99)

	add, remove, _ := o.SavePatch()
	if len(add) != 0 {
		t.Errorf("add = %v, want empty", add)
	}
	if !reflect.DeepEqual(remove, []int{1}) {
		t.Errorf("remove = %v, want [1]", remove)
	}

	if got := o.CurrentMembers(); len(got) != 0 {
		t.Errorf("CurrentMembers = %v, want empty", got)
	}
}

func TestOverlayReAddCancelsRemoval(t *testing.T) {
	o := NewOverlay([]int{7})
	o.Remove(7)
	if o.Contains(7) {
		t.Fatal("Contains(7) after remove = true")
	}

	o.Add(7)
	if !o.Contains(7) {
		t.Fatal("Contains(7) after re-add = false")
	}

	add, remove, _ := o.SavePatch()
	if len(add) != 0 || len(remove) != 0 {
		t.Errorf("patch = add %v remove %v, want both empty", add, remove)
	}
}

func TestOverlayCurrentMembersSorted(t *testing.T) {
	o := NewOverlay([]int{30, 10})
	o.Add(20)
	o.Remove(10)

	if got, want := o.CurrentMembers(), []int{20, 30}; !reflect.DeepEqual(got, want) {
		t.Errorf("CurrentMembers = %v, want %v", got, want)
	}
}

func TestOverlaySettledRejectsFurtherUse(t *testing.T) {
	o := NewOverlay(nil)
	o.Add(1)

	if err := o.MarkApplied(); err != nil {
		t.Fatalf("MarkApplied error: %v", err)
	}
	if got := o.State(); got != StateApplied {
		t.Fatalf("State = %s, want %s", got, StateApplied)
	}

	if err := o.Add(2); !errors.Is(err, ErrOverlaySettled) {
		t.Errorf("Add after apply = %v, want ErrOverlaySettled", err)
	}
	if err := o.Remove(1); !errors.Is(err, ErrOverlaySettled) {
		t.Errorf("Remove after apply = %v, want ErrOverlaySettled", err)
	}
	if _, _, err := o.SavePatch(); !errors.Is(err, ErrOverlaySettled) {
		t.Errorf("SavePatch after apply = %v, want ErrOverlaySettled", err)
	}
	if err := o.MarkRolledBack(); !errors.Is(err, ErrOverlaySettled) {
		t.Errorf("MarkRolledBack after apply = %v, want ErrOverlaySettled", err)
	}
}

func TestOverlayRollback(t *testing.T) {
	o := NewOverlay([]int{1})
	o.Add(2)

	if err := o.MarkRolledBack(); err != nil {
		t.Fatalf("MarkRolledBack error: %v", err)
	}
	if got := o.State(); got != StateRolledBack {
		t.Fatalf("State = %s, want %s", got, StateRolledBack)
	}
	if err := o.MarkApplied(); !errors.Is(err, ErrOverlaySettled) {
		t.Errorf("MarkApplied after rollback = %v, want ErrOverlaySettled", err)
	}
}
