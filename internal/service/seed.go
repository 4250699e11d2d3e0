package service

import "github.com/MKhiriev/go-timetable/models"

// seedAccount is a bootstrap account. Admins are identified by username,
// lecturers by school number.
type seedAccount struct {
	Username     string
	Password     string
	Role         models.Role
	SchoolNumber string
}

// identifiedBySchoolNumber reports which key decides whether the account
// already exists.
func (a seedAccount) identifiedBySchoolNumber() bool {
	return a.SchoolNumber != ""
}

// defaultAccounts are created once at initialization. The credentials are
// fixed and must be rotated on any real deployment.
var defaultAccounts = []seedAccount{
	{Username: "admin1", Password: "adminpass1", Role: models.RoleAdmin},
	{Username: "admin2", Password: "adminpass2", Role: models.RoleAdmin},
	{Username: "lecturer1", Password: "lecturerpass1", Role: models.RoleLecturer, SchoolNumber: "dmi001"},
	{Username: "lecturer2", Password: "lecturerpass2", Role: models.RoleLecturer, SchoolNumber: "dmi002"},
}
