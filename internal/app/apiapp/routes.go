package apiapp

import (
	"github.com/go-chi/chi/v5"

	"github.com/smediamanagement84-star/ModelApp/internal/transport/http/handlers"
)

func (a *App) routes(r *chi.Mux) {
	authH := handlers.NewAuthHandler(a.authService)
	talentH := handlers.NewTalentHandler(a.discoveryService, a.cfg.Catalog.AgeMin, a.cfg.Catalog.AgeMax)
	unlockH := handlers.NewUnlockHandler(a.unlockService)
	paymentH := handlers.NewPaymentHandler(a.paymentService, a.discoveryService)
	bookingH := handlers.NewBookingHandler(a.bookingService)
	configH := handlers.NewConfigHandler(a.cfg.Catalog, a.cfg.Payments)

	r.Get("/healthz", handlers.Health)
	r.Get("/config", configH.Get)

	r.Post("/auth/login", authH.Login)
	r.Post("/auth/logout", authH.Logout)

	r.Get("/talents", talentH.List)
	r.Get("/talents/{id}", talentH.Get)

	r.Get("/unlocks", unlockH.List)

	r.Route("/payments/attempts", func(r chi.Router) {
		r.Post("/", paymentH.Begin)
		r.Get("/{id}", paymentH.Get)
		r.Post("/{id}/method", paymentH.SelectMethod)
		r.Post("/{id}/credentials", paymentH.EnterCredentials)
		r.Post("/{id}/submit", paymentH.Submit)
		r.Delete("/{id}", paymentH.Cancel)
	})

	r.Post("/bookings", bookingH.Create)
	r.Get("/bookings", bookingH.List)
}
