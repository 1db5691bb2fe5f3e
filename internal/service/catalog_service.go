package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/classpoint/sis-backend/internal/catalog"
	"github.com/classpoint/sis-backend/internal/config"
	"github.com/classpoint/sis-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CatalogService serves the department-scoped option lists for the class
// form. Scoped lists are cached in Redis and invalidated whenever a subject,
// section, or teacher changes. Cache failures fall through to Postgres.
type CatalogService struct {
	cfg         *config.Config
	subjectRepo *repository.SubjectRepository
	sectionRepo *repository.SectionRepository
	teacherRepo *repository.TeacherRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	cfg *config.Config,
	subjectRepo *repository.SubjectRepository,
	sectionRepo *repository.SectionRepository,
	teacherRepo *repository.TeacherRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		cfg:         cfg,
		subjectRepo: subjectRepo,
		sectionRepo: sectionRepo,
		teacherRepo: teacherRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "catalog_service").Logger(),
	}
}

// OptionsForDepartment returns the subjects, sections, and teachers owned by
// one department. Slices are empty, not nil, when a department has no rows.
func (s *CatalogService) OptionsForDepartment(ctx context.Context, departmentID int) (catalog.Options, error) {
	cacheKey := config.CacheKey.DepartmentCatalogKey(departmentID)

	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var opts catalog.Options
		if err := json.Unmarshal([]byte(cached), &opts); err == nil {
			return opts, nil
		}
		s.log.Warn().Int("department_id", departmentID).Msg("Dropping unreadable catalog cache entry")
		s.rdb.Del(ctx, cacheKey)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Catalog cache read failed, querying database")
	}

	opts, err := s.loadOptions(ctx, &departmentID)
	if err != nil {
		return catalog.Options{}, err
	}

	if payload, err := json.Marshal(opts); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cfg.CatalogCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Catalog cache write failed")
		}
	}

	return opts, nil
}

// Invalidate drops the cached option lists for a department. Entity services
// call this after any subject, section, or teacher write.
func (s *CatalogService) Invalidate(ctx context.Context, departmentID int) {
	cacheKey := config.CacheKey.DepartmentCatalogKey(departmentID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.log.Warn().Err(err).Int("department_id", departmentID).Msg("Catalog cache invalidation failed")
	}
}

func (s *CatalogService) loadOptions(ctx context.Context, departmentID *int) (catalog.Options, error) {
	subjects, err := s.subjectRepo.List(ctx, departmentID)
	if err != nil {
		return catalog.Options{}, err
	}
	sections, err := s.sectionRepo.List(ctx, departmentID)
	if err != nil {
		return catalog.Options{}, err
	}
	teachers, err := s.teacherRepo.List(ctx, departmentID)
	if err != nil {
		return catalog.Options{}, err
	}

	opts := catalog.Options{Subjects: subjects, Sections: sections, Teachers: teachers}
	if departmentID != nil {
		opts = opts.ForDepartment(*departmentID)
	}
	return opts, nil
}
