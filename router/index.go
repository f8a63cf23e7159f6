package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	order := v1.Group("/order", logger.New())
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Post("/filter", middleware.Protected(), validate.FilterOrders(), handler.GetOrders)
	order.Get("/table/:tableId", middleware.Protected(), validate.GetById("tableId"), handler.GetActiveOrderByTable)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	order.Get("/:orderId/total", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderTotal)
	order.Get("/:orderId/receipt", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderReceipt)
	order.Post("/:orderId/items", middleware.Protected(), validate.AddOrderItem(), validate.GetById("orderId"), handler.AddOrderItem)
	order.Delete("/:orderId/items/:orderItemId", middleware.Protected(), validate.GetById("orderId"), handler.RemoveOrderItem)
	order.Patch("/:orderId/confirm", middleware.Protected(), validate.GetById("orderId"), handler.ConfirmOrder)
	order.Patch("/:orderId/pay", middleware.Protected(), validate.GetById("orderId"), handler.PayOrder)
	order.Patch("/:orderId/cancel", middleware.Protected(), validate.GetById("orderId"), handler.CancelOrder)
	order.Patch("/items/:orderItemId/serve", middleware.Protected(), validate.GetById("orderItemId"), handler.ServeOrderItem)

	kitchen := v1.Group("/kitchen", logger.New())
	kitchen.Get("/queue", middleware.Protected(), handler.GetKitchenQueue)
	kitchen.Patch("/items/:orderItemId/ready", middleware.Protected(), validate.GetById("orderItemId"), handler.MarkOrderItemReady)
	kitchen.Get("/ws", websocket.New(handler.KitchenWebSocket))

	table := v1.Group("/table", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Delete("/:tableId", middleware.Protected(), validate.GetById("tableId"), handler.DeleteTable)

	category := v1.Group("/category", logger.New())
	category.Get("/", middleware.Protected(), handler.GetCategories)
	category.Get("/:categoryId/menu-items", middleware.Protected(), validate.GetById("categoryId"), handler.GetMenuItemsByCategory)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Delete("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), handler.DeleteCategory)

	menuItem := v1.Group("/menu-item", logger.New())
	menuItem.Get("/search", middleware.Protected(), handler.SearchMenuItems)
	menuItem.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menuItem.Put("/:menuItemId", middleware.Protected(), validate.UpdateMenuItem("menuItemId"), handler.UpdateMenuItem)
	menuItem.Delete("/:menuItemId", middleware.Protected(), validate.GetById("menuItemId"), handler.DeleteMenuItem)

	discount := v1.Group("/discount", logger.New())
	discount.Get("/", middleware.Protected(), handler.GetActiveDiscounts)
	discount.Post("/", middleware.Protected(), validate.CreateDiscount(), handler.CreateDiscount)
	discount.Patch("/:discountId/end", middleware.Protected(), validate.GetById("discountId"), handler.EndDiscount)

	waiter := v1.Group("/waiter", logger.New())
	waiter.Get("/", middleware.Protected(), handler.GetWaiters)
	waiter.Post("/", middleware.Protected(), validate.CreateWaiter(), handler.CreateWaiter)

	report := v1.Group("/report", logger.New())
	report.Get("/revenue", middleware.Protected(), handler.GetTodayRevenue)
	report.Get("/average-check", middleware.Protected(), handler.GetAverageCheck)
	report.Get("/order-count", middleware.Protected(), handler.GetOrderCount)
	report.Get("/popular-menu-items", middleware.Protected(), handler.GetPopularMenuItems)
	report.Get("/average-order-duration", middleware.Protected(), handler.GetAverageOrderDuration)
	report.Get("/waiter-rating", middleware.Protected(), handler.GetWaiterRating)
}
