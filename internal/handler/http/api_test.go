package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-timetable/models"
)

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestRegister_CreatesStudent(t *testing.T) {
	_, router := newTestAPI(t)

	rec := do(t, router, http.MethodPost, "/api/auth/register", "",
		models.RegisterRequest{Username: "alice", Password: "pw", SchoolNumber: "S-1"})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	user := decodeBody[models.User](t, rec)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotContains(t, rec.Body.String(), "password")

	token := loginAs(t, router, "alice", "pw")
	assert.NotEmpty(t, token)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{
			name:       "missing school number",
			body:       map[string]string{"username": "bob", "password": "pw"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       map[string]string{"username": "bob", "password": "pw", "school_number": "S", "role": "admin"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate username",
			body:       models.RegisterRequest{Username: "admin1", Password: "pw", SchoolNumber: "S-9"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "duplicate school number",
			body:       models.RegisterRequest{Username: "carol", Password: "pw", SchoolNumber: "dmi001"},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newTestAPI(t)

			rec := do(t, router, http.MethodPost, "/api/auth/register", "", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decodeBody[models.MessageResponse](t, rec).Message)
		})
	}
}

func TestLogin_ReturnsTokenHeaderAndCookie(t *testing.T) {
	_, router := newTestAPI(t)

	rec := do(t, router, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Username: "admin1", Password: "adminpass1"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[models.LoginResponse](t, rec)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.NotZero(t, resp.UserID)
	assert.Equal(t, "Bearer "+resp.Token, rec.Header().Get("Authorization"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	_, router := newTestAPI(t)

	wrongPassword := do(t, router, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Username: "admin1", Password: "nope"})
	unknownUser := do(t, router, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Username: "ghost", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestSessionCookie_AuthenticatesAndLogoutClearsIt(t *testing.T) {
	_, router := newTestAPI(t)

	login := do(t, router, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Username: "lecturer1", Password: "lecturerpass1"})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "lecturer1", decodeBody[models.User](t, rec).Username)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, sessionCookieName, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestMe_RejectsAnonymousAndGarbageTokens(t *testing.T) {
	_, router := newTestAPI(t)

	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodGet, "/api/auth/me", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodGet, "/api/auth/me", "not-a-jwt", nil).Code)
}

func TestDashboard_PerRole(t *testing.T) {
	_, router := newTestAPI(t)

	admin := loginAs(t, router, "admin1", "adminpass1")
	rec := do(t, router, http.MethodGet, "/api/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decodeBody[models.Dashboard](t, rec).View)

	lecturer := loginAs(t, router, "lecturer2", "lecturerpass2")
	rec = do(t, router, http.MethodGet, "/api/dashboard", lecturer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lecturer", decodeBody[models.Dashboard](t, rec).View)
}

// ─────────────────────────────────────────────
// admin users
// ─────────────────────────────────────────────

func TestAdminUsers_Lifecycle(t *testing.T) {
	_, router := newTestAPI(t)
	admin := loginAs(t, router, "admin1", "adminpass1")

	rec := do(t, router, http.MethodPost, "/api/admin/users", admin,
		models.AddUserRequest{Username: "dave", Role: models.RoleStudent, RegistrationNumber: "REG-7"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	dave := decodeBody[models.User](t, rec)
	require.NotNil(t, dave.SchoolNumber)
	assert.Equal(t, "REG-7", *dave.SchoolNumber)

	// the registration number is the initial password
	loginAs(t, router, "dave", "REG-7")

	rec = do(t, router, http.MethodGet, "/api/admin/users", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.User](t, rec), 5)

	path := fmt.Sprintf("/api/admin/users/%d", dave.UserID)
	newName := "david"
	rec = do(t, router, http.MethodPut, path, admin, models.EditUserRequest{Username: &newName})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodDelete, path, admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodDelete, path, admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUsers_Errors(t *testing.T) {
	_, router := newTestAPI(t)
	admin := loginAs(t, router, "admin1", "adminpass1")
	student := func() string {
		do(t, router, http.MethodPost, "/api/auth/register", "",
			models.RegisterRequest{Username: "erin", Password: "pw", SchoolNumber: "S-2"})
		return loginAs(t, router, "erin", "pw")
	}()

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       any
		wantStatus int
	}{
		{"anonymous list", http.MethodGet, "/api/admin/users", "", nil, http.StatusUnauthorized},
		{"student list", http.MethodGet, "/api/admin/users", student, nil, http.StatusForbidden},
		{"invalid role", http.MethodPost, "/api/admin/users", admin,
			map[string]string{"username": "x", "role": "janitor", "registration_number": "R"}, http.StatusBadRequest},
		{"duplicate username", http.MethodPost, "/api/admin/users", admin,
			models.AddUserRequest{Username: "admin2", Role: models.RoleAdmin, RegistrationNumber: "R-1"}, http.StatusConflict},
		{"non-numeric id", http.MethodDelete, "/api/admin/users/abc", admin, nil, http.StatusBadRequest},
		{"zero id", http.MethodPut, "/api/admin/users/0", admin, map[string]string{}, http.StatusBadRequest},
		{"unknown id", http.MethodPut, "/api/admin/users/999", admin, map[string]string{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// timetable and lookups
// ─────────────────────────────────────────────

func TestTimetable_AdminAddsLecturerReads(t *testing.T) {
	_, router := newTestAPI(t)
	admin := loginAs(t, router, "admin1", "adminpass1")

	entry := models.AddTimetableEntryRequest{
		Day: models.Monday, Batch: "B1", Subject: "Math", Lecture: "lecturer1", Room: "R101", Time: "09:00-10:00",
	}
	rec := do(t, router, http.MethodPost, "/api/admin/timetable", admin, entry)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.TimetableEntry](t, rec)
	assert.NotNil(t, created.LecturerID)

	rec = do(t, router, http.MethodGet, "/api/admin/timetable", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.TimetableEntry](t, rec), 1)

	lecturer1 := loginAs(t, router, "lecturer1", "lecturerpass1")
	rec = do(t, router, http.MethodGet, "/api/lecturer/timetable", lecturer1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.TimetableEntry](t, rec), 1)

	rec = do(t, router, http.MethodGet, "/api/lecturer/timetable/lecturer1", lecturer1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.TimetableEntry](t, rec), 1)

	// another lecturer's schedule is never revealed
	lecturer2 := loginAs(t, router, "lecturer2", "lecturerpass2")
	rec = do(t, router, http.MethodGet, "/api/lecturer/timetable/lecturer1", lecturer2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.TimetableEntry](t, rec))

	rec = do(t, router, http.MethodGet, "/api/lecturer/timetable", admin, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/admin/timetable", lecturer1, entry)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTimetable_RejectsInvalidEntry(t *testing.T) {
	_, router := newTestAPI(t)
	admin := loginAs(t, router, "admin1", "adminpass1")

	rec := do(t, router, http.MethodPost, "/api/admin/timetable", admin, map[string]string{
		"day": "Funday", "batch": "B1", "subject": "Math", "lecture": "lecturer1", "room": "R1", "time": "9",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/admin/timetable", admin, map[string]string{"day": "Monday"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTimetable_DayIsCaseInsensitive(t *testing.T) {
	_, router := newTestAPI(t)
	admin := loginAs(t, router, "admin1", "adminpass1")

	rec := do(t, router, http.MethodPost, "/api/admin/timetable", admin, map[string]string{
		"day": "tuesday", "batch": "B1", "subject": "Math", "lecture": "lecturer1", "room": "R1", "time": "9",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, models.Tuesday, decodeBody[models.TimetableEntry](t, rec).Day)
}

func TestLookups_AddListAndForm(t *testing.T) {
	_, router := newTestAPI(t)
	admin := loginAs(t, router, "admin1", "adminpass1")

	rec := do(t, router, http.MethodPost, "/api/admin/batches", admin, models.NameRequest{Name: "2026-A"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/admin/batches", admin, models.NameRequest{Name: "2026-A"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/admin/batches", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Batch](t, rec), 1)

	rec = do(t, router, http.MethodPost, "/api/admin/lecturers", admin, models.NameRequest{Name: "Dr. Who"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/admin/lecturers", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	// two seeded lecturer names plus the new one
	assert.Len(t, decodeBody[[]models.Lecturer](t, rec), 3)

	rec = do(t, router, http.MethodGet, "/api/admin/timetable/form", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	form := decodeBody[models.TimetableForm](t, rec)
	assert.Len(t, form.Batches, 1)
	assert.Len(t, form.Lecturers, 2)
	assert.Empty(t, form.Entries)
}

// ─────────────────────────────────────────────
// health and version
// ─────────────────────────────────────────────

func TestHealth_OK(t *testing.T) {
	_, router := newTestAPI(t)

	rec := do(t, router, http.MethodGet, "/api/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody[models.Health](t, rec)
	assert.Equal(t, models.HealthOK, health.Status)
	assert.Equal(t, "v-test", health.Version)
}

func TestVersion_PlainText(t *testing.T) {
	_, router := newTestAPI(t)

	rec := do(t, router, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v-test", rec.Body.String())
}
