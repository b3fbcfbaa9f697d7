package handler

import (
	"github.com/go-chi/chi/v5"
)

// Handlers groups every HTTP handler of the service
type Handlers struct {
	Auth     *AuthHandler
	Employee *EmployeeHandler
	HR       *HRHandler
	Manager  *ManagerHandler
}

// RegisterRoutes mounts the /api tree on r
func RegisterRoutes(r chi.Router, h *Handlers) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Get("/employee/{staffId}", h.Employee.Get)
		r.Put("/employee/{staffId}/phone", h.Employee.UpdatePhone)

		r.Route("/hr", func(r chi.Router) {
			r.Get("/employees", h.HR.ListEmployees)
			r.Get("/employees/export", h.HR.ExportEmployees)
			r.Get("/employee/{staffId}", h.HR.GetEmployee)
			r.Get("/employee/{staffId}/history", h.HR.EmployeeHistory)
			r.Get("/search", h.HR.Search)
			r.Get("/salary-stats", h.HR.SalaryStats)

			r.Get("/sections", h.HR.ListSections)
			r.Get("/section/{sectionId}", h.HR.GetSection)
			r.Put("/section/{sectionId}", h.HR.RenameSection)

			r.Get("/places", h.HR.ListPlaces)
			r.Post("/places", h.HR.CreatePlace)
			r.Get("/place/{placeId}", h.HR.GetPlace)

			r.Get("/employments", h.HR.ListEmployments)
		})

		r.Route("/manager/section/{sectionId}", func(r chi.Router) {
			r.Get("/employees", h.Manager.ListEmployees)
			r.Get("/employee/{staffId}", h.Manager.GetEmployee)
			r.Get("/search", h.Manager.Search)
			r.Get("/salary-stats", h.Manager.SalaryStats)
		})
	})
}
