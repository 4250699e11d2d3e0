package models

// TimetableEntry is a single scheduled session.
//
// Lecture is the lecturer's username as typed on the admin form. LecturerID
// is a weak reference resolved at write time; it is nil when no such user
// existed and is never enforced, so deleting the lecturer leaves the entry
// orphaned.
type TimetableEntry struct {
	ID         int64   `json:"id"`
	Day        Weekday `json:"day"`
	Batch      string  `json:"batch"`
	Subject    string  `json:"subject"`
	Lecture    string  `json:"lecture"`
	LecturerID *int64  `json:"lecturer_id,omitempty"`
	Room       string  `json:"room"`
	Time       string  `json:"time"`
}

// TableName returns the name of the database table
// associated with the TimetableEntry model.
func (t TimetableEntry) TableName() string {
	return "timetable"
}

// TimetableForm is everything the admin timetable form needs.
type TimetableForm struct {
	Batches   []Batch          `json:"batches"`
	Lecturers []User           `json:"lecturers"`
	Entries   []TimetableEntry `json:"timetable"`
}
