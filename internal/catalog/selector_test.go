package catalog

import (
	"testing"

	"github.com/classpoint/sis-backend/internal/model"
)

func fixtureOptions() Options {
	return Options{
		Subjects: []model.Subject{
			{ID: 1, DepartmentID: 10, Code: "CS101", Name: "Intro to Computing"},
			{ID: 2, DepartmentID: 20, Code: "MATH201", Name: "Calculus II"},
		},
		Sections: []model.Section{
			{ID: 5, DepartmentID: 10, Name: "CS-A"},
			{ID: 6, DepartmentID: 20, Name: "MATH-A"},
		},
		Teachers: []model.Teacher{
			{ID: 8, DepartmentID: 10, Name: "Ada"},
			{ID: 9, DepartmentID: 20, Name: "Emmy"},
		},
	}
}

func TestForDepartmentFiltersAllThreeLists(t *testing.T) {
	scoped := fixtureOptions().ForDepartment(10)

	if len(scoped.Subjects) != 1 || scoped.Subjects[0].ID != 1 {
		t.Errorf("Subjects = %+v, want only id 1", scoped.Subjects)
	}
	if len(scoped.Sections) != 1 || scoped.Sections[0].ID != 5 {
		t.Errorf("Sections = %+v, want only id 5", scoped.Sections)
	}
	if len(scoped.Teachers) != 1 || scoped.Teachers[0].ID != 8 {
		t.Errorf("Teachers = %+v, want only id 8", scoped.Teachers)
	}
}

func TestForDepartmentUnknownDepartmentIsEmptyNotNil(t *testing.T) {
	scoped := fixtureOptions().ForDepartment(99)
	if scoped.Subjects == nil || scoped.Sections == nil || scoped.Teachers == nil {
		t.Fatal("scoped lists must be empty slices, not nil")
	}
	if len(scoped.Subjects)+len(scoped.Sections)+len(scoped.Teachers) != 0 {
		t.Errorf("expected no options, got %+v", scoped)
	}
}

func TestPruneClearsStaleSelectionsOnDepartmentChange(t *testing.T) {
	opts := fixtureOptions()

	// Draft was built for department 10, then the admin switched to 20.
	draft := model.ClassDraft{DepartmentID: 20, SubjectID: 1, SectionID: 5, TeacherID: 8}

	if !opts.Prune(&draft) {
		t.Fatal("Prune reported no changes for stale selections")
	}
	if draft.SubjectID != 0 || draft.SectionID != 0 || draft.TeacherID != 0 {
		t.Errorf("stale selections not cleared: %+v", draft)
	}
}

func TestPruneKeepsMatchingSelections(t *testing.T) {
	opts := fixtureOptions()
	draft := model.ClassDraft{DepartmentID: 10, SubjectID: 1, SectionID: 5, TeacherID: 8}

	if opts.Prune(&draft) {
		t.Fatal("Prune cleared selections that still match the department")
	}
	if draft.SubjectID != 1 || draft.SectionID != 5 || draft.TeacherID != 8 {
		t.Errorf("draft changed unexpectedly: %+v", draft)
	}
}

func TestCovers(t *testing.T) {
	opts := fixtureOptions()

	ok := model.ClassDraft{DepartmentID: 10, SubjectID: 1, SectionID: 5, TeacherID: 8}
	if !opts.Covers(ok) {
		t.Error("Covers rejected a well-formed draft")
	}

	crossDept := model.ClassDraft{DepartmentID: 10, SubjectID: 2, SectionID: 5, TeacherID: 8}
	if opts.Covers(crossDept) {
		t.Error("Covers accepted a subject from another department")
	}

	missing := model.ClassDraft{DepartmentID: 10, SubjectID: 1, SectionID: 5}
	if opts.Covers(missing) {
		t.Error("Covers accepted a draft with no teacher selected")
	}
}
