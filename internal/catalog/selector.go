// Package catalog keeps class-form choices consistent with the chosen
// department. The subject, section, and teacher pickers only ever offer
// rows from the selected department, and a department change clears any
// selection that no longer matches before validation runs. Out-of-department
// selections are a precondition failure, not a validation error kind.
package catalog

import "github.com/classpoint/sis-backend/internal/model"

// Options holds the full reference lists the class form draws from.
type Options struct {
	Subjects []model.Subject `json:"subjects"`
	Sections []model.Section `json:"sections"`
	Teachers []model.Teacher `json:"teachers"`
}

// ForDepartment narrows the options to rows owned by the department.
func (o Options) ForDepartment(departmentID int) Options {
	out := Options{
		Subjects: make([]model.Subject, 0, len(o.Subjects)),
		Sections: make([]model.Section, 0, len(o.Sections)),
		Teachers: make([]model.Teacher, 0, len(o.Teachers)),
	}
	for _, s := range o.Subjects {
		if s.DepartmentID == departmentID {
			out.Subjects = append(out.Subjects, s)
		}
	}
	for _, s := range o.Sections {
		if s.DepartmentID == departmentID {
			out.Sections = append(out.Sections, s)
		}
	}
	for _, t := range o.Teachers {
		if t.DepartmentID == departmentID {
			out.Teachers = append(out.Teachers, t)
		}
	}
	return out
}

// Prune clears draft selections whose department no longer matches the
// draft's department. Returns true when anything was cleared, so callers
// know the draft changed under the admin.
func (o Options) Prune(draft *model.ClassDraft) bool {
	scoped := o.ForDepartment(draft.DepartmentID)
	cleared := false

	if draft.SubjectID != 0 && !hasSubject(scoped.Subjects, draft.SubjectID) {
		draft.SubjectID = 0
		cleared = true
	}
	if draft.SectionID != 0 && !hasSection(scoped.Sections, draft.SectionID) {
		draft.SectionID = 0
		cleared = true
	}
	if draft.TeacherID != 0 && !hasTeacher(scoped.Teachers, draft.TeacherID) {
		draft.TeacherID = 0
		cleared = true
	}
	return cleared
}

// Covers reports whether every selection in the draft belongs to the draft's
// department. The save path rejects drafts that fail this precondition.
func (o Options) Covers(draft model.ClassDraft) bool {
	scoped := o.ForDepartment(draft.DepartmentID)
	return hasSubject(scoped.Subjects, draft.SubjectID) &&
		hasSection(scoped.Sections, draft.SectionID) &&
		hasTeacher(scoped.Teachers, draft.TeacherID)
}

func hasSubject(subjects []model.Subject, id int) bool {
	for _, s := range subjects {
		if s.ID == id {
			return true
		}
	}
	return false
}

func hasSection(sections []model.Section, id int) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

func hasTeacher(teachers []model.Teacher, id int) bool {
	for _, t := range teachers {
		if t.ID == id {
			return true
		}
	}
	return false
}
