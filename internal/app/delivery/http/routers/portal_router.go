package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachPortalRoutes(router chi.Router, ctrls Controllers) {
	router.Get("/dashboard", ctrls.Dashboard.GetDashboard)

	router.Get("/sessions", ctrls.Session.ListSessions)
	router.Get("/sessions/{session_id}", ctrls.Session.FindSessionByID)
	router.Post("/sessions/{session_id}/cancel", ctrls.Session.CancelSession)
	router.Post("/slots/{slot_id}/book", ctrls.Session.BookSlot)

	router.Get("/psychologists", ctrls.Psychologist.ListPsychologists)
	router.Get("/psychologists/{psychologist_id}", ctrls.Psychologist.FindPsychologistByID)
	router.Get("/psychologists/{psychologist_id}/slots", ctrls.Psychologist.FindSlots)

	router.Get("/notifications", ctrls.Notification.ListNotifications)
	router.Post("/notifications/read-all", ctrls.Notification.MarkAllRead)
	router.Get("/notifications/count", ctrls.Notification.GetUnreadCount)

	router.Get("/profile", ctrls.Profile.GetProfile)
	router.Patch("/profile", ctrls.Profile.UpdateProfile)

	router.Get("/transactions", ctrls.Transaction.ListTransactions)

	router.Get("/complaints", ctrls.Complaint.ListComplaints)
	router.Post("/complaints", ctrls.Complaint.CreateComplaint)
}
