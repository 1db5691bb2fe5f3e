package enrollment

import "fmt"

// ClassMembership is the roster of one class other than the one being
// edited, with enough subject data to name a blocking enrollment.
type ClassMembership struct {
	ClassID     int
	SubjectID   int
	SubjectName string
	StudentIDs  []int
}

// Decision is the outcome of a duplicate-subject enrollment check.
type Decision struct {
	OK                bool   `json:"ok"`
	Reason            string `json:"reason,omitempty"`
	BlockingClassID   int    `json:"blocking_class_id,omitempty"`
	BlockingSubjectID int    `json:"blocking_subject_id,omitempty"`
	BlockingSubject   string `json:"blocking_subject,omitempty"`
}

// CanEnroll decides whether a student may join the class being edited
// without ending up enrolled in two classes of the same subject. This is the
// single implementation used by both the interactive add check and the bulk
// roster save, so the rule cannot diverge between call sites.
//
// The student's subject memberships are derived, never stored: the union of
// subject ids over every other class the student appears in, plus the edited
// class's own subject while the overlay still includes the student. That
// keeps the answer consistent across remove-then-reconsider sequences in the
// same session. Re-adding a student who was already a committed member of
// the edited class is a no-op, not a conflict.
//
// With a nil overlay the decision considers only the other classes. That is
// how retained members are re-qualified when the edited class changes its
// subject: the committed-member allowance must not carry over to a subject
// the roster was never saved under.
func CanEnroll(overlay *Overlay, others []ClassMembership, target SubjectRef, studentID int) Decision {
	blockedBy := map[int]ClassMembership{}

	for _, other := range others {
		for _, id := range other.StudentIDs {
			if id == studentID {
				blockedBy[other.SubjectID] = other
				break
			}
		}
	}

	editedIncludes := overlay != nil && overlay.Contains(studentID)
	if editedIncludes {
		if _, seen := blockedBy[target.ID]; !seen {
			blockedBy[target.ID] = ClassMembership{SubjectID: target.ID, SubjectName: target.Name}
		}
	}

	blocking, taken := blockedBy[target.ID]
	if !taken {
		return Decision{OK: true}
	}
	if overlay != nil && overlay.Committed(studentID) {
		return Decision{OK: true}
	}

	subject := blocking.SubjectName
	if subject == "" {
		subject = target.Name
	}
	d := Decision{
		OK:                false,
		BlockingClassID:   blocking.ClassID,
		BlockingSubjectID: target.ID,
		BlockingSubject:   subject,
	}
	if blocking.ClassID != 0 {
		d.Reason = fmt.Sprintf("student %d is already enrolled in another class teaching %s", studentID, subject)
	} else {
		d.Reason = fmt.Sprintf("student %d is already being added to this class for %s", studentID, subject)
	}
	return d
}

// SubjectRef identifies the subject taught by the class being edited.
type SubjectRef struct {
	ID   int
	Name string
}
