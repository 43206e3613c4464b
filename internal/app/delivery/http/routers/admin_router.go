package routers

import (
	"konsulin-portal/internal/app/delivery/http/middlewares"
	"konsulin-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrls Controllers) {
	router.Use(middlewares.RequireRoles(constvars.RoleAdmin))

	router.Get("/applications", ctrls.Application.ListApplications)
	router.Get("/applications/{application_id}", ctrls.Application.FindApplicationByID)
	router.Post("/applications/{application_id}/decision", ctrls.Application.DecideApplication)

	router.Patch("/complaints/{complaint_id}", ctrls.Complaint.UpdateComplaint)

	router.Get("/trends", ctrls.Analytics.GetTrends)
}
