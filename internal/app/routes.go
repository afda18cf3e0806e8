package app

import handlers "github.com/M34031-1/high-load-course/internal/handlers"

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	app := a.Router.Group("/payments")
	app.GET("/:id/records", h.GetPaymentRecords)
}
