package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withPrincipal, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
	})

	// every route below is authorized by the guard
	router.Group(func(r chi.Router) {
		r.Get("/api/auth/me", h.me)
		r.Get("/api/dashboard", h.dashboard)

		r.Get("/api/admin/users", h.listUsers)
		r.Post("/api/admin/users", h.addUser)
		r.Put("/api/admin/users/{id}", h.editUser)
		r.Delete("/api/admin/users/{id}", h.deleteUser)

		r.Get("/api/admin/timetable", h.listTimetable)
		r.Post("/api/admin/timetable", h.addTimetableEntry)
		r.Get("/api/admin/timetable/form", h.timetableForm)

		r.Get("/api/admin/batches", h.listBatches)
		r.Post("/api/admin/batches", h.addBatch)
		r.Get("/api/admin/lecturers", h.listLecturerNames)
		r.Post("/api/admin/lecturers", h.addLecturerName)

		r.Get("/api/lecturer/timetable", h.ownTimetable)
		r.Get("/api/lecturer/timetable/{username}", h.lecturerTimetable)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
