package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/classpoint/sis-backend/internal/config"
	"github.com/classpoint/sis-backend/internal/database"
	"github.com/classpoint/sis-backend/internal/logger"
	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/repository"
	"github.com/classpoint/sis-backend/internal/schedule"
	"github.com/classpoint/sis-backend/internal/service"
)

// Seeds a small demo dataset: one department with subjects, a section, two
// teachers, fifty students, and one scheduled class with an initial roster.
// Safe to re-run; it skips seeding when the department already exists.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	departmentRepo := repository.NewDepartmentRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	classRepo := repository.NewClassRepository(pool)

	catalogService := service.NewCatalogService(cfg, subjectRepo, sectionRepo, teacherRepo, rdb, log)
	classService := service.NewClassService(classRepo, subjectRepo, catalogService, log)

	fmt.Println("=== Seeding demo data ===")

	var existingID int
	err = pool.QueryRow(ctx, `SELECT id FROM departments WHERE code = 'SCI'`).Scan(&existingID)
	if err == nil {
		fmt.Printf("Department SCI already exists (ID %d), nothing to do\n", existingID)
		return
	}
	if err != pgx.ErrNoRows {
		log.Fatal().Err(err).Msg("Failed to check existing department")
	}

	department := &model.Department{Code: "SCI", Name: "Science"}
	if err := departmentRepo.Create(ctx, department); err != nil {
		log.Fatal().Err(err).Msg("Failed to create department")
	}
	fmt.Printf("Created department %s (ID %d)\n", department.Code, department.ID)

	subjects := []*model.Subject{
		{DepartmentID: department.ID, Code: "BIO101", Name: "Introductory Biology"},
		{DepartmentID: department.ID, Code: "CHEM101", Name: "General Chemistry"},
		{DepartmentID: department.ID, Code: "PHYS101", Name: "Classical Mechanics"},
	}
	for _, s := range subjects {
		if err := subjectRepo.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Str("code", s.Code).Msg("Failed to create subject")
		}
	}
	fmt.Printf("Created %d subjects\n", len(subjects))

	section := &model.Section{DepartmentID: department.ID, Name: "Science A", Capacity: 60}
	if err := sectionRepo.Create(ctx, section); err != nil {
		log.Fatal().Err(err).Msg("Failed to create section")
	}

	teachers := []*model.Teacher{
		{DepartmentID: department.ID, Name: "Helen Ramirez", Email: "helen.ramirez@classpoint.example"},
		{DepartmentID: department.ID, Name: "Marcus Boyd", Email: "marcus.boyd@classpoint.example"},
	}
	for _, t := range teachers {
		if err := teacherRepo.Create(ctx, t); err != nil {
			log.Fatal().Err(err).Str("email", t.Email).Msg("Failed to create teacher")
		}
	}

	names := []string{
		"Ava Thompson", "Liam Carter", "Mia Nguyen", "Noah Patel", "Emma Rossi",
		"Oliver Kim", "Sophia Alvarez", "Elijah Brooks", "Isabella Fontaine", "Lucas Meyer",
		"Amelia Novak", "Mason Delgado", "Harper Lindqvist", "Ethan Okafor", "Evelyn Sato",
		"Logan Petrov", "Abigail Moreau", "Jackson Hale", "Emily Varga", "Aiden Castillo",
		"Ella Bergstrom", "Sebastian Cruz", "Scarlett Dube", "Carter Ionescu", "Grace Whitfield",
		"Wyatt Kovacs", "Chloe Anand", "Julian Pires", "Penelope Larsen", "Levi Moretti",
		"Lily Demir", "Isaac Fontana", "Hannah Strand", "Gabriel Reyes", "Zoey Kaplan",
		"Anthony Vidal", "Nora Eriksen", "Dylan Mbeki", "Riley Santoro", "Leah Virtanen",
		"Nathan Aubert", "Audrey Klein", "Caleb Duarte", "Savannah Holt", "Christian Vega",
		"Stella Marsh", "Hunter Oduya", "Violet Renner", "Adrian Sousa", "Lucy Thorne",
	}

	studentIDs := make([]int, 0, len(names))
	for i, name := range names {
		student := &model.Student{
			StudentNo: fmt.Sprintf("S%05d", i+1),
			Name:      name,
			Email:     fmt.Sprintf("student%03d@classpoint.example", i+1),
			SectionID: &section.ID,
		}
		if err := studentRepo.Create(ctx, student); err != nil {
			log.Fatal().Err(err).Str("student_no", student.StudentNo).Msg("Failed to create student")
		}
		studentIDs = append(studentIDs, student.ID)
	}
	fmt.Printf("Created %d students\n", len(studentIDs))

	draft := model.ClassDraft{
		DepartmentID: department.ID,
		SubjectID:    subjects[0].ID,
		SectionID:    section.ID,
		TeacherID:    teachers[0].ID,
		Schedules: []schedule.Candidate{
			{DayOfWeek: "1", StartTime: "08:00", EndTime: "09:30", Room: "B201"},
			{DayOfWeek: "3", StartTime: "10:00", EndTime: "11:30", Room: "B201"},
		},
		StudentIDs: studentIDs[:25],
	}
	class, err := classService.Create(ctx, 0, draft)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create class")
	}
	fmt.Printf("Created class %d (%s, %d students)\n", class.ID, subjects[0].Code, len(class.StudentIDs))

	fmt.Println("Done")
}
