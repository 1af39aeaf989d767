package router

import (
	"repair_shop/handler"
	"repair_shop/middleware"
	"repair_shop/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Use(middleware.RateLimiter())

	customer := app.Group("/customers", logger.New())
	customer.Post("/login", validate.Login(), handler.CustomerLogin)
	customer.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	customer.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	customer.Post("/change-password", middleware.CustomerRequired(), validate.ChangePasswordCustomer(), handler.ChangePasswordCustomer)
	customer.Post("/", validate.CreateCustomer(), handler.CreateCustomer)
	customer.Get("/", handler.GetCustomers)
	customer.Get("/:customerId", validate.GetById("customerId"), handler.GetCustomerById)
	customer.Put("/:customerId", validate.GetById("customerId"), validate.CreateCustomer(), handler.UpdateCustomer)
	customer.Patch("/:customerId", validate.GetById("customerId"), validate.PatchCustomer(), handler.PatchCustomer)
	customer.Delete("/:customerId", validate.GetById("customerId"), handler.DeleteCustomer)

	mechanic := app.Group("/mechanics", logger.New())
	mechanic.Post("/login", validate.Login(), handler.MechanicLogin)
	mechanic.Get("/popular", handler.PopularMechanics)
	mechanic.Get("/search", handler.SearchMechanics)
	mechanic.Post("/", validate.CreateMechanic(), handler.CreateMechanic)
	mechanic.Get("/", handler.GetMechanics)
	mechanic.Get("/:mechanicId", validate.GetById("mechanicId"), handler.GetMechanicById)
	mechanic.Put("/:mechanicId", middleware.MechanicRequired(), validate.GetById("mechanicId"), validate.CreateMechanic(), handler.UpdateMechanic)
	mechanic.Patch("/:mechanicId", middleware.MechanicRequired(), validate.GetById("mechanicId"), validate.PatchMechanic(), handler.PatchMechanic)
	mechanic.Delete("/:mechanicId", middleware.MechanicRequired(), validate.GetById("mechanicId"), handler.DeleteMechanic)

	inventory := app.Group("/inventory", logger.New())
	inventory.Post("/", validate.CreateInventory(), handler.CreateInventory)
	inventory.Get("/", handler.GetInventory)
	inventory.Get("/sku/:sku", handler.GetInventoryBySku)
	inventory.Get("/:partId", validate.GetById("partId"), handler.GetInventoryById)
	inventory.Put("/:partId", validate.GetById("partId"), validate.CreateInventory(), handler.UpdateInventory)
	inventory.Patch("/:partId", validate.GetById("partId"), validate.PatchInventory(), handler.PatchInventory)
	inventory.Delete("/:partId", validate.GetById("partId"), handler.DeleteInventory)

	ticket := app.Group("/tickets", logger.New())
	ticket.Get("/my-tickets", middleware.CustomerRequired(), handler.MyTickets)
	ticket.Post("/", validate.CreateTicket(), handler.CreateTicket)
	ticket.Get("/", middleware.CacheTTL(), handler.GetTickets)
	ticket.Get("/:ticketId/mechanics", middleware.CacheTTL(), validate.GetById("ticketId"), handler.GetTicketMechanics)
	ticket.Get("/:ticketId/qr", validate.GetById("ticketId"), handler.TicketQR)
	ticket.Put("/:ticketId/assign-mechanic/:mechanicId",
		validate.ParamId("ticketId", "ticketId"), validate.ParamId("mechanicId", "mechanicId"), handler.AssignMechanic)
	ticket.Put("/:ticketId/remove-mechanic/:mechanicId",
		validate.ParamId("ticketId", "ticketId"), validate.ParamId("mechanicId", "mechanicId"), handler.RemoveMechanic)
	ticket.Put("/:ticketId", validate.GetById("ticketId"), validate.BulkEditMechanics(), handler.BulkEditMechanics)
	ticket.Patch("/:ticketId", validate.GetById("ticketId"), validate.PatchTicket(), handler.PatchTicket)
	ticket.Post("/:ticketId/add-part", validate.GetById("ticketId"), validate.AddPart(), handler.AddPart)
}
