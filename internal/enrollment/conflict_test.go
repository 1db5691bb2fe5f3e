package enrollment

import (
	"strings"
	"testing"
)

const studentS = 42

func cs101(students ...int) ClassMembership {
	return ClassMembership{ClassID: 1, SubjectID: 10, SubjectName: "CS101", StudentIDs: students}
}

func TestCanEnrollBlocksDuplicateSubject(t *testing.T) {
	// S is committed in class A (CS101); class B teaches CS101 too.
	overlayB := NewOverlay(nil)

	d := CanEnroll(overlayB, []ClassMembership{cs101(studentS)}, SubjectRef{ID: 10, Name: "CS101"}, studentS)
	if d.OK {
		t.Fatal("expected conflict for duplicate subject enrollment")
	}
	if !strings.Contains(d.Reason, "CS101") {
		t.Errorf("reason %q does not name the blocking subject", d.Reason)
	}
	if d.BlockingClassID != 1 {
		t.Errorf("BlockingClassID = %d, want 1", d.BlockingClassID)
	}
}

func TestCanEnrollAllowsDifferentSubject(t *testing.T) {
	overlayC := NewOverlay(nil)

	d := CanEnroll(overlayC, []ClassMembership{cs101(studentS)}, SubjectRef{ID: 20, Name: "MATH201"}, studentS)
	if !d.OK {
		t.Fatalf("expected ok for a different subject, got reason %q", d.Reason)
	}
}

func TestCanEnrollReAddingCommittedMemberIsNoConflict(t *testing.T) {
	// Editing class A itself: S is already committed there.
	overlayA := NewOverlay([]int{studentS})

	d := CanEnroll(overlayA, nil, SubjectRef{ID: 10, Name: "CS101"}, studentS)
	if !d.OK {
		t.Fatalf("re-adding a committed member reported as conflict: %q", d.Reason)
	}
}

func TestCanEnrollSeesSameSessionRemoval(t *testing.T) {
	overlayA := NewOverlay([]int{studentS})
	overlayA.Remove(studentS)

	// After removing S in this session, S may be reconsidered for class A.
	d := CanEnroll(overlayA, nil, SubjectRef{ID: 10, Name: "CS101"}, studentS)
	if !d.OK {
		t.Fatalf("removal not visible to same-session check: %q", d.Reason)
	}
}

func TestCanEnrollPendingAddBlocksSecondAdd(t *testing.T) {
	overlay := NewOverlay(nil)
	overlay.Add(studentS)

	// S is only pending, not committed, so the derived membership set already
	// contains the subject and a second add is rejected.
	d := CanEnroll(overlay, nil, SubjectRef{ID: 10, Name: "CS101"}, studentS)
	if d.OK {
		t.Fatal("expected pending member to block a duplicate add")
	}
}

func TestCanEnrollRetainedMemberUnderNewSubject(t *testing.T) {
	// The edited class switches to MATH201 while keeping S, and S is
	// already committed in class B which teaches MATH201.
	others := []ClassMembership{
		{ClassID: 2, SubjectID: 20, SubjectName: "MATH201", StudentIDs: []int{studentS}},
	}

	// With the edited class's overlay the committed-member allowance
	// answers OK, which is why subject changes re-check without one.
	if d := CanEnroll(NewOverlay([]int{studentS}), others, SubjectRef{ID: 20, Name: "MATH201"}, studentS); !d.OK {
		t.Fatalf("committed member unexpectedly blocked: %q", d.Reason)
	}

	d := CanEnroll(nil, others, SubjectRef{ID: 20, Name: "MATH201"}, studentS)
	if d.OK {
		t.Fatal("expected conflict for a retained member under the new subject")
	}
	if d.BlockingClassID != 2 {
		t.Errorf("BlockingClassID = %d, want 2", d.BlockingClassID)
	}
	if !strings.Contains(d.Reason, "MATH201") {
		t.Errorf("reason %q does not name the blocking subject", d.Reason)
	}
}

func TestCanEnrollIgnoresOtherStudents(t *testing.T) {
	overlay := NewOverlay(nil)

	d := CanEnroll(overlay, []ClassMembership{cs101(7, 8, 9)}, SubjectRef{ID: 10, Name: "CS101"}, studentS)
	if !d.OK {
		t.Fatalf("unrelated rosters caused a conflict: %q", d.Reason)
	}
}

func TestCanEnrollUnionAcrossManyClasses(t *testing.T) {
	others := []ClassMembership{
		{ClassID: 2, SubjectID: 20, SubjectName: "MATH201", StudentIDs: []int{studentS}},
		{ClassID: 3, SubjectID: 30, SubjectName: "PHY110", StudentIDs: []int{studentS}},
	}
	overlay := NewOverlay(nil)

	if d := CanEnroll(overlay, others, SubjectRef{ID: 30, Name: "PHY110"}, studentS); d.OK {
		t.Fatal("expected conflict against second membership")
	}
	if d := CanEnroll(overlay, others, SubjectRef{ID: 40, Name: "CHEM100"}, studentS); !d.OK {
		t.Fatalf("expected ok for unheld subject, got %q", d.Reason)
	}
}
