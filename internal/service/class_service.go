package service

import (
	"context"
	"errors"
	"time"

	"github.com/classpoint/sis-backend/internal/enrollment"
	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
	"github.com/classpoint/sis-backend/internal/schedule"
	"github.com/rs/zerolog"
)

// ErrSelectionOutsideDepartment means a draft references a subject, section,
// or teacher from a different department than the class. The selector UI
// clears stale selections on department change, so hitting this server-side
// means the client skipped that precondition.
var ErrSelectionOutsideDepartment = errors.New("subject, section, and teacher must belong to the class department")

// ConflictError reports a rejected roster addition. The decision carries the
// blocking subject so the message can name it.
type ConflictError struct {
	Decision enrollment.Decision
}

func (e *ConflictError) Error() string { return e.Decision.Reason }

// ClassService owns the class offering workflow: schedule validation,
// department referential checks, duplicate-subject enrollment checks, and
// the single atomic save per edit session. Committed changes are announced
// to registered sinks as typed events; nothing else observes saves.
type ClassService struct {
	classRepo   *repository.ClassRepository
	subjectRepo *repository.SubjectRepository
	catalog     *CatalogService
	sinks       []enrollment.Sink
	log         zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(
	classRepo *repository.ClassRepository,
	subjectRepo *repository.SubjectRepository,
	catalog *CatalogService,
	log zerolog.Logger,
) *ClassService {
	return &ClassService{
		classRepo:   classRepo,
		subjectRepo: subjectRepo,
		catalog:     catalog,
		log:         log.With().Str("component", "class_service").Logger(),
	}
}

// AddSink registers an observer for committed class and roster changes.
// Call during wiring, before the service handles requests.
func (s *ClassService) AddSink(sink enrollment.Sink) {
	s.sinks = append(s.sinks, sink)
}

// GetByID retrieves a class aggregate.
func (s *ClassService) GetByID(ctx context.Context, id int) (*model.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// ListPaginated retrieves class summaries.
func (s *ClassService) ListPaginated(ctx context.Context, search string, page, perPage int) ([]model.ClassSummary, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.classRepo.ListPaginated(ctx, search, perPage, (page-1)*perPage)
}

// ValidateSchedule runs the schedule validator over candidate rows. Exposed
// as its own operation so the form can validate inline before saving.
func (s *ClassService) ValidateSchedule(candidates []schedule.Candidate) ([]schedule.Entry, error) {
	return schedule.Validate(candidates)
}

// CheckEnrollment decides whether a student can be added to a class without
// a duplicate-subject conflict, evaluating the caller's open edit session.
// classID is 0 when the class has not been created yet. This is the same
// decision path the bulk save runs, so the interactive answer cannot
// disagree with the save outcome.
func (s *ClassService) CheckEnrollment(ctx context.Context, classID, subjectID int, req model.RosterCheckRequest) (enrollment.Decision, error) {
	subjectRef, err := s.subjectRef(ctx, subjectID)
	if err != nil {
		return enrollment.Decision{}, err
	}

	overlay, err := s.sessionOverlay(ctx, classID, req.PendingAdds, req.PendingRemoves)
	if err != nil {
		return enrollment.Decision{}, err
	}

	others, err := s.classRepo.MembershipsExcluding(ctx, classID)
	if err != nil {
		return enrollment.Decision{}, err
	}

	return enrollment.CanEnroll(overlay, others, subjectRef, req.StudentID), nil
}

// Create validates and persists a new class offering with its initial
// roster in one transaction.
func (s *ClassService) Create(ctx context.Context, actorID int, draft model.ClassDraft) (*model.Class, error) {
	entries, err := schedule.Validate(draft.Schedules)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferential(ctx, draft); err != nil {
		return nil, err
	}

	subjectRef, err := s.subjectRef(ctx, draft.SubjectID)
	if err != nil {
		return nil, err
	}
	others, err := s.classRepo.MembershipsExcluding(ctx, 0)
	if err != nil {
		return nil, err
	}

	overlay := enrollment.NewOverlay(nil)
	for _, studentID := range draft.StudentIDs {
		if d := enrollment.CanEnroll(overlay, others, subjectRef, studentID); !d.OK {
			return nil, &ConflictError{Decision: d}
		}
		if err := overlay.Add(studentID); err != nil {
			return nil, err
		}
	}

	class := &model.Class{
		DepartmentID: draft.DepartmentID,
		SubjectID:    draft.SubjectID,
		SectionID:    draft.SectionID,
		TeacherID:    draft.TeacherID,
		Schedules:    entries,
		StudentIDs:   overlay.CurrentMembers(),
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		overlay.MarkRolledBack()
		return nil, err
	}
	overlay.MarkApplied()

	s.publish(enrollment.Event{
		Kind: enrollment.EventClassCreated, ClassID: class.ID,
		SubjectID: class.SubjectID, ActorID: actorID, At: time.Now(),
	})
	for _, studentID := range class.StudentIDs {
		s.publish(enrollment.Event{
			Kind: enrollment.EventStudentAdded, ClassID: class.ID,
			SubjectID: class.SubjectID, StudentID: studentID, ActorID: actorID, At: time.Now(),
		})
	}

	s.log.Info().Int("class_id", class.ID).Int("students", len(class.StudentIDs)).Msg("Class created")
	return s.classRepo.GetByID(ctx, class.ID)
}

// Update replaces a class's schedule list and applies the roster delta from
// one edit session in a single transaction. Concurrent editors are not
// detected; the last save wins.
func (s *ClassService) Update(ctx context.Context, actorID, id int, req model.ClassUpdateRequest) (*model.Class, error) {
	entries, err := schedule.Validate(req.Schedules)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferential(ctx, req.ClassDraft); err != nil {
		return nil, err
	}

	subjectRef, err := s.subjectRef(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}
	others, err := s.classRepo.MembershipsExcluding(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	overlay := enrollment.NewOverlay(existing.StudentIDs)

	// Removals first so a same-session remove+add lands as a no-op patch.
	for _, studentID := range req.Roster.Remove {
		if err := overlay.Remove(studentID); err != nil {
			return nil, err
		}
	}
	for _, studentID := range req.Roster.Add {
		if d := enrollment.CanEnroll(overlay, others, subjectRef, studentID); !d.OK {
			return nil, &ConflictError{Decision: d}
		}
		if err := overlay.Add(studentID); err != nil {
			return nil, err
		}
	}

	// Changing the subject re-qualifies every retained member. The
	// committed-member allowance only covers the subject the roster was
	// saved under, so each kept student is checked with no overlay, like
	// a fresh addition against the other classes.
	if existing.SubjectID != req.SubjectID {
		for _, studentID := range overlay.CurrentMembers() {
			if d := enrollment.CanEnroll(nil, others, subjectRef, studentID); !d.OK {
				return nil, &ConflictError{Decision: d}
			}
		}
	}

	add, remove, err := overlay.SavePatch()
	if err != nil {
		return nil, err
	}

	class := &model.Class{
		ID:           id,
		DepartmentID: req.DepartmentID,
		SubjectID:    req.SubjectID,
		SectionID:    req.SectionID,
		TeacherID:    req.TeacherID,
		Schedules:    entries,
	}

	if err := s.classRepo.Update(ctx, class, add, remove); err != nil {
		overlay.MarkRolledBack()
		return nil, err
	}
	overlay.MarkApplied()

	s.publish(enrollment.Event{
		Kind: enrollment.EventClassUpdated, ClassID: id,
		SubjectID: req.SubjectID, ActorID: actorID, At: time.Now(),
	})
	for _, studentID := range add {
		s.publish(enrollment.Event{
			Kind: enrollment.EventStudentAdded, ClassID: id,
			SubjectID: req.SubjectID, StudentID: studentID, ActorID: actorID, At: time.Now(),
		})
	}
	for _, studentID := range remove {
		s.publish(enrollment.Event{
			Kind: enrollment.EventStudentRemoved, ClassID: id,
			SubjectID: req.SubjectID, StudentID: studentID, ActorID: actorID, At: time.Now(),
		})
	}

	s.log.Info().Int("class_id", id).Int("added", len(add)).Int("removed", len(remove)).Msg("Class updated")
	return s.classRepo.GetByID(ctx, id)
}

// Delete removes a class offering.
func (s *ClassService) Delete(ctx context.Context, actorID, id int) error {
	if err := s.classRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(enrollment.Event{
		Kind: enrollment.EventClassDeleted, ClassID: id, ActorID: actorID, At: time.Now(),
	})
	return nil
}

func (s *ClassService) checkReferential(ctx context.Context, draft model.ClassDraft) error {
	opts, err := s.catalog.OptionsForDepartment(ctx, draft.DepartmentID)
	if err != nil {
		return err
	}
	if !opts.Covers(draft) {
		return ErrSelectionOutsideDepartment
	}
	return nil
}

func (s *ClassService) subjectRef(ctx context.Context, subjectID int) (enrollment.SubjectRef, error) {
	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		return enrollment.SubjectRef{}, err
	}
	return enrollment.SubjectRef{ID: subject.ID, Name: subject.Name}, nil
}

func (s *ClassService) sessionOverlay(ctx context.Context, classID int, pendingAdds, pendingRemoves []int) (*enrollment.Overlay, error) {
	var committed []int
	if classID > 0 {
		var err error
		if committed, err = s.classRepo.CommittedRoster(ctx, classID); err != nil {
			return nil, err
		}
	}
	overlay := enrollment.NewOverlay(committed)
	for _, id := range pendingRemoves {
		if err := overlay.Remove(id); err != nil {
			return nil, err
		}
	}
	for _, id := range pendingAdds {
		if err := overlay.Add(id); err != nil {
			return nil, err
		}
	}
	return overlay, nil
}

func (s *ClassService) publish(e enrollment.Event) {
	for _, sink := range s.sinks {
		sink.Publish(e)
	}
}
