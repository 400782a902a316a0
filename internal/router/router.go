package router

import (
	"net/http"

	"github.com/stpnv0/VenueBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	AdminLogin(c *ginext.Context)
	Logout(c *ginext.Context)

	ListEvents(c *ginext.Context)
	ListCategories(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ValidateDates(c *ginext.Context)

	BookEvent(c *ginext.Context)
	MyBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	PayBooking(c *ginext.Context)
	Receipt(c *ginext.Context)

	AdminListBookings(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	AdminListUsers(c *ginext.Context)
	AdminActivity(c *ginext.Context)

	Stats(c *ginext.Context)
	Profile(c *ginext.Context)
	ChangePassword(c *ginext.Context)
}

// InitRouter registers every route. authenticate resolves the actor for the
// /api group; admin checks happen in the services.
func InitRouter(mode string, h Handler, authenticate ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", authenticate)
	{
		// Public
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/admin/login", h.AdminLogin)

		api.GET("/events", h.ListEvents)
		api.GET("/events/categories", h.ListCategories)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/validate-dates", h.ValidateDates)
	}

	protected := api.Group("", middleware.RequireActor())
	{
		protected.POST("/auth/logout", h.Logout)

		// Events
		protected.POST("/events", h.CreateEvent)
		protected.PUT("/events/:id", h.UpdateEvent)
		protected.DELETE("/events/:id", h.DeleteEvent)

		// Bookings
		protected.POST("/events/:id/book", h.BookEvent)
		protected.GET("/bookings/me", h.MyBookings)
		protected.GET("/bookings/:id", h.GetBooking)
		protected.POST("/bookings/:id/pay", h.PayBooking)
		protected.GET("/bookings/:id/receipt", h.Receipt)

		// Admin
		protected.GET("/admin/bookings", h.AdminListBookings)
		protected.POST("/admin/bookings/:id/approve", h.ApproveBooking)
		protected.POST("/admin/bookings/:id/reject", h.RejectBooking)
		protected.GET("/admin/users", h.AdminListUsers)
		protected.GET("/admin/activity", h.AdminActivity)

		// Account
		protected.GET("/stats", h.Stats)
		protected.GET("/profile", h.Profile)
		protected.PUT("/profile/password", h.ChangePassword)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
