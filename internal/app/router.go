// internal/app/router.go
package app

import (
	authHandler "farepass-service/internal/handlers/auth"
	bookingHandler "farepass-service/internal/handlers/booking"
	contentHandler "farepass-service/internal/handlers/content"
	currencyHandler "farepass-service/internal/handlers/currency"
	customerHandler "farepass-service/internal/handlers/customer"
	dashboardHandler "farepass-service/internal/handlers/dashboard"
	documentHandler "farepass-service/internal/handlers/document"
	footerHandler "farepass-service/internal/handlers/footer"
	notifyHandler "farepass-service/internal/handlers/notification"
	planHandler "farepass-service/internal/handlers/plan"
	vendorHandler "farepass-service/internal/handlers/vendor"
	wsHandler "farepass-service/internal/handlers/websocket"
	"farepass-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler         *authHandler.AuthHandler
	BookingHandler      *bookingHandler.BookingHandler
	CustomerHandler     *customerHandler.CustomerHandler
	VendorHandler       *vendorHandler.VendorHandler
	PlanHandler         *planHandler.PlanHandler
	ContentHandler      *contentHandler.ContentHandler
	FooterHandler       *footerHandler.FooterHandler
	DocumentHandler     *documentHandler.DocumentHandler
	NotificationHandler *notifyHandler.NotificationHandler
	CurrencyHandler     *currencyHandler.CurrencyHandler
	DashboardHandler    *dashboardHandler.DashboardHandler
	WSHandler           *wsHandler.WebSocketHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.HandleConnection)

	// ==================== Public Routes ====================
	api.POST("/bookings", h.BookingHandler.Create)
	api.GET("/plans", h.PlanHandler.ListPublic)
	api.GET("/faq", h.ContentHandler.PublicFAQ)
	api.GET("/pages/:slug", h.ContentHandler.PublicPage)
	api.GET("/footer", h.FooterHandler.GetPublic)

	// ==================== Auth ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)

		authProtected := auth.Group("")
		authProtected.Use(h.AuthMiddleware.Auth())
		{
			authProtected.POST("/logout", h.AuthHandler.Logout)
			authProtected.POST("/change-password", h.AuthHandler.ChangePassword)
			authProtected.GET("/me", h.AuthHandler.Me)
		}
	}

	// ==================== Admin ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireRole("admin", "super_admin"))
	{
		admin.GET("/dashboard", h.DashboardHandler.GetStats)

		bookings := admin.Group("/bookings")
		{
			bookings.GET("", h.BookingHandler.List)
			bookings.GET("/export", h.BookingHandler.Export)
			bookings.GET("/:id", h.BookingHandler.Get)
			bookings.PUT("/:id", h.BookingHandler.Update)
			bookings.PUT("/:id/status", h.BookingHandler.UpdateStatus)
			bookings.PUT("/:id/assign-vendor", h.BookingHandler.AssignVendor)
			bookings.DELETE("/:id", h.BookingHandler.Delete)
		}

		customers := admin.Group("/customers")
		{
			customers.GET("", h.CustomerHandler.List)
			customers.GET("/export", h.CustomerHandler.Export)
			customers.GET("/:key", h.CustomerHandler.Get)
			customers.PUT("/:key", h.CustomerHandler.Update)
			customers.DELETE("/:key", h.CustomerHandler.Delete)
			customers.POST("/:key/avatar", h.DocumentHandler.UploadAvatar)
			customers.DELETE("/:key/avatar", h.DocumentHandler.RemoveAvatar)
		}

		vendors := admin.Group("/vendors")
		{
			vendors.POST("", h.VendorHandler.Create)
			vendors.GET("", h.VendorHandler.List)
			vendors.GET("/:id", h.VendorHandler.Get)
			vendors.PUT("/:id", h.VendorHandler.Update)
			vendors.DELETE("/:id", h.VendorHandler.Delete)
		}

		plans := admin.Group("/plans")
		{
			plans.POST("", h.PlanHandler.Create)
			plans.GET("", h.PlanHandler.List)
			plans.GET("/stats", h.PlanHandler.Stats)
			plans.GET("/:id", h.PlanHandler.Get)
			plans.PUT("/:id", h.PlanHandler.Update)
			plans.PUT("/:id/active", h.PlanHandler.SetActive)
			plans.DELETE("/:id", h.PlanHandler.Delete)
		}

		faq := admin.Group("/faq")
		{
			faq.POST("/sections", h.ContentHandler.CreateSection)
			faq.GET("/sections", h.ContentHandler.ListSections)
			faq.PUT("/sections/:id", h.ContentHandler.UpdateSection)
			faq.DELETE("/sections/:id", h.ContentHandler.DeleteSection)

			faq.POST("/items", h.ContentHandler.CreateItem)
			faq.GET("/items", h.ContentHandler.ListItems)
			faq.GET("/items/:id", h.ContentHandler.GetItem)
			faq.PUT("/items/:id", h.ContentHandler.UpdateItem)
			faq.PUT("/items/:id/translations", h.ContentHandler.SaveItemTranslations)
			faq.DELETE("/items/:id", h.ContentHandler.DeleteItem)
		}

		pages := admin.Group("/pages")
		{
			pages.POST("", h.ContentHandler.CreatePage)
			pages.GET("", h.ContentHandler.ListPages)
			pages.GET("/:id", h.ContentHandler.GetPage)
			pages.PUT("/:id", h.ContentHandler.UpdatePage)
			pages.PUT("/:id/translations/batch", h.ContentHandler.SavePageTranslations)
			pages.DELETE("/:id", h.ContentHandler.DeletePage)
		}

		footer := admin.Group("/footer")
		{
			footer.GET("", h.FooterHandler.Get)
			footer.POST("", h.FooterHandler.Write)
			footer.PUT("/items/:id/visibility", h.FooterHandler.SetItemVisibility)
			footer.DELETE("/items/:id", h.FooterHandler.DeleteItem)
		}

		documents := admin.Group("/documents")
		{
			documents.GET("", h.DocumentHandler.List)
			documents.PUT("/:id/review", h.DocumentHandler.Review)
			documents.DELETE("/:id", h.DocumentHandler.Delete)
		}
		admin.POST("/uploads", h.DocumentHandler.Upload)

		notifications := admin.Group("/notifications")
		{
			notifications.GET("", h.NotificationHandler.List)
			notifications.GET("/unread-count", h.NotificationHandler.UnreadCount)
			notifications.PUT("/:id/read", h.NotificationHandler.MarkRead)
			notifications.PUT("/read-all", h.NotificationHandler.MarkAllRead)
		}

		rates := admin.Group("/rates")
		{
			rates.GET("", h.CurrencyHandler.List)
			rates.POST("/refresh", h.CurrencyHandler.Refresh)
		}
	}
}
