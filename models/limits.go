package models

// Column widths of the relational schema, in characters. Longer values are
// rejected before they reach the store.
const (
	MaxUsernameLen     = 80
	MaxSchoolNumberLen = 80

	MaxBatchLen   = 50
	MaxSubjectLen = 100
	MaxLectureLen = 100
	MaxRoomLen    = 50
	MaxTimeLen    = 50

	MaxBatchNameLen    = 50
	MaxLecturerNameLen = 100
)
