package router

import (
	"restaurant_manager/constants"
	"restaurant_manager/handler"
	"restaurant_manager/helper"
	"restaurant_manager/middleware"
	"restaurant_manager/storage"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, tokens *helper.TokenIssuer, images storage.Storage) {
	app.Get("/health", h.Health)

	api := app.Group("/api", middleware.Protected(tokens))

	auth := api.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/register", validate.Register(), h.Register)
	auth.Post("/verify", validate.VerifyToken(), h.VerifyToken)

	menu := api.Group("/menu")
	menu.Get("/", validate.GetMenuItems(), h.GetMenuItems)
	menu.Get("/:id", validate.GetById("id"), h.GetMenuItemById)
	menu.Post("/", validate.CreateMenuItem(), validate.Image(images, "menu"), h.CreateMenuItem)
	menu.Put("/:id", validate.UpdateMenuItem("id"), validate.Image(images, "menu"), h.UpdateMenuItem)
	menu.Delete("/:id", validate.GetById("id"), h.DeleteMenuItem)

	events := api.Group("/events")
	// rsvps is registered before /:id so it is not taken for an event id
	rsvps := events.Group("/rsvps")
	rsvps.Get("/", validate.GetRSVPs(), h.GetRSVPs)
	rsvps.Get("/:id", validate.GetById("id"), h.GetRSVPById)
	rsvps.Put("/:id", validate.UpdateStatus(constants.RSVP_STATUSES), validate.GetById("id"), h.UpdateRSVPStatus)
	rsvps.Patch("/:id", validate.UpdateStatus(constants.RSVP_STATUSES), validate.GetById("id"), h.UpdateRSVPStatus)
	rsvps.Delete("/:id", validate.GetById("id"), h.DeleteRSVP)

	events.Get("/", validate.Pagination(), h.GetEvents)
	events.Get("/:id", validate.GetById("id"), h.GetEventById)
	events.Post("/", validate.CreateEvent(), validate.Image(images, "events"), h.CreateEvent)
	events.Put("/:id", validate.UpdateEvent("id"), validate.Image(images, "events"), h.UpdateEvent)
	events.Delete("/:id", validate.GetById("id"), h.DeleteEvent)
	events.Post("/:id/rsvp", validate.CreateRSVP("id"), h.CreateRSVP)

	promotions := api.Group("/promotions")
	promotions.Post("/validate", validate.ValidatePromotion(), h.ValidatePromotion)
	promotions.Get("/", validate.Pagination(), h.GetPromotions)
	promotions.Get("/:id", validate.GetById("id"), h.GetPromotionById)
	promotions.Post("/", validate.CreatePromotion(), h.CreatePromotion)
	promotions.Put("/:id", validate.UpdatePromotion("id"), h.UpdatePromotion)
	promotions.Delete("/:id", validate.GetById("id"), h.DeletePromotion)

	reservations := api.Group("/reservations")
	reservations.Get("/available-times", validate.AvailableTimes(), h.GetAvailableTimes)
	reservations.Get("/", validate.GetReservations(), h.GetReservations)
	reservations.Get("/:id", validate.GetById("id"), h.GetReservationById)
	reservations.Post("/", validate.CreateReservation(), h.CreateReservation)
	reservations.Put("/:id", validate.UpdateStatus(constants.RESERVATION_STATUSES), validate.GetById("id"), h.UpdateReservationStatus)
	reservations.Patch("/:id", validate.UpdateStatus(constants.RESERVATION_STATUSES), validate.GetById("id"), h.UpdateReservationStatus)

	transactions := api.Group("/transactions")
	transactions.Get("/", validate.GetTransactions(), h.GetTransactions)
	transactions.Get("/:id", validate.GetById("id"), h.GetTransactionById)
	transactions.Get("/:id/qr", validate.GetById("id"), h.GetTransactionQR)
	transactions.Post("/", validate.CreateTransaction(), h.CreateTransaction)
	transactions.Put("/:id", validate.UpdateStatus(constants.TRANSACTION_STATUSES), validate.GetById("id"), h.UpdateTransactionStatus)
	transactions.Patch("/:id", validate.UpdateStatus(constants.TRANSACTION_STATUSES), validate.GetById("id"), h.UpdateTransactionStatus)

	if h.HasFeed() {
		ws := app.Group("/ws", func(c *fiber.Ctx) error {
			if !websocket.IsWebSocketUpgrade(c) {
				return fiber.ErrUpgradeRequired
			}
			return c.Next()
		})
		ws.Get("/feed", middleware.QueryToken(tokens), websocket.New(h.FeedSocket))
	}
}
