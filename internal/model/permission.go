package model

// Permission represents a string code for a specific system action.
type Permission string

const (
	// PermissionDepartmentsRead allows viewing departments.
	PermissionDepartmentsRead Permission = "departments:read"

	// PermissionDepartmentsWrite allows creating, updating, and deleting departments.
	PermissionDepartmentsWrite Permission = "departments:write"

	// PermissionSubjectsRead allows viewing subjects.
	PermissionSubjectsRead Permission = "subjects:read"

	// PermissionSubjectsWrite allows creating, updating, and deleting subjects.
	PermissionSubjectsWrite Permission = "subjects:write"

	// PermissionSectionsRead allows viewing sections.
	PermissionSectionsRead Permission = "sections:read"

	// PermissionSectionsWrite allows creating, updating, and deleting sections.
	PermissionSectionsWrite Permission = "sections:write"

	// PermissionTeachersRead allows viewing teachers.
	PermissionTeachersRead Permission = "teachers:read"

	// PermissionTeachersWrite allows creating, updating, and deleting teachers.
	PermissionTeachersWrite Permission = "teachers:write"

	// PermissionStudentsRead allows viewing student lists and details.
	PermissionStudentsRead Permission = "students:read"

	// PermissionStudentsWrite allows creating, updating, and deleting students.
	PermissionStudentsWrite Permission = "students:write"

	// PermissionClassesRead allows viewing class offerings and rosters.
	PermissionClassesRead Permission = "classes:read"

	// PermissionClassesWrite allows creating and editing class offerings and rosters.
	PermissionClassesWrite Permission = "classes:write"

	// PermissionAdminsRead allows viewing console user lists and details.
	PermissionAdminsRead Permission = "admins:read"

	// PermissionAdminsWrite allows creating, updating, and deleting console users.
	PermissionAdminsWrite Permission = "admins:write"

	// PermissionRolesRead allows viewing roles and permissions.
	PermissionRolesRead Permission = "roles:read"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []Permission{
	PermissionDepartmentsRead,
	PermissionDepartmentsWrite,
	PermissionSubjectsRead,
	PermissionSubjectsWrite,
	PermissionSectionsRead,
	PermissionSectionsWrite,
	PermissionTeachersRead,
	PermissionTeachersWrite,
	PermissionStudentsRead,
	PermissionStudentsWrite,
	PermissionClassesRead,
	PermissionClassesWrite,
	PermissionAdminsRead,
	PermissionAdminsWrite,
	PermissionRolesRead,
}
