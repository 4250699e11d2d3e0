package models

// Batch is a named student cohort offered in the timetable form.
type Batch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Lecturer is a lecturer name offered in the timetable form.
type Lecturer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
