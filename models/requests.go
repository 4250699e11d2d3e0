package models

// RegisterRequest is the self-registration form. Role is always student.
type RegisterRequest struct {
	Username     string `json:"username" validate:"required,max=80"`
	Password     string `json:"password" validate:"required"`
	SchoolNumber string `json:"school_number" validate:"required,max=80"`
}

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AddUserRequest is the admin "add user" payload. The registration number
// becomes both the school number and the initial password.
type AddUserRequest struct {
	Username           string `json:"username" validate:"required,max=80"`
	Role               Role   `json:"role" validate:"required,role"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=80"`
}

// EditUserRequest is the admin partial edit payload.
type EditUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=80"`
	Role     *Role   `json:"role,omitempty" validate:"omitempty,role"`
}

// AddTimetableEntryRequest is the admin timetable form payload.
type AddTimetableEntryRequest struct {
	Day     Weekday `json:"day" validate:"required,weekday"`
	Batch   string  `json:"batch" validate:"required,max=50"`
	Subject string  `json:"subject" validate:"required,max=100"`
	Lecture string  `json:"lecture" validate:"required,max=100"`
	Room    string  `json:"room" validate:"required,max=50"`
	Time    string  `json:"time" validate:"required,max=50"`
}

// NameRequest is used to add batches and lecturer names.
type NameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// MessageResponse is the generic JSON reply of mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	UserID int64  `json:"id"`
	Role   Role   `json:"role"`
	Token  string `json:"token"`
}
