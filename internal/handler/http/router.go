package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bikya/bikya-backend/internal/domain/entity"
	"github.com/bikya/bikya-backend/internal/handler/http/middleware"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

type Router struct {
	userHandler     *UserHandler
	authHandler     *AuthHandler
	bikeHandler     *BikeHandler
	bookingHandler  *BookingHandler
	paymentHandler  *PaymentHandler
	documentHandler *DocumentHandler
	userUsecase     usecasecontract.IUserUseCase
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	bikeUsecase usecasecontract.IBikeUseCase,
	bookingUsecase usecasecontract.IBookingUseCase,
	paymentUsecase usecasecontract.IPaymentUseCase,
	documentUsecase usecasecontract.IDocumentUseCase,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler:     NewUserHandler(userUsecase),
		authHandler:     NewAuthHandler(userUsecase, config.GetAppBaseURL()),
		bikeHandler:     NewBikeHandler(bikeUsecase),
		bookingHandler:  NewBookingHandler(bookingUsecase),
		paymentHandler:  NewPaymentHandler(paymentUsecase),
		documentHandler: NewDocumentHandler(documentUsecase),
		userUsecase:     userUsecase,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.RequestMetrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/forgot-password", r.userHandler.ForgotPassword)
		auth.POST("/reset-password", r.userHandler.ResetPassword)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)
		auth.POST("/logout", r.userHandler.Logout)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	// Public user routes
	users := v1.Group("/users")
	{
		users.GET("/profile/:id", r.userHandler.GetUser)
	}

	// Public bike routes
	bikes := v1.Group("/bikes")
	{
		bikes.GET("", r.bikeHandler.GetBikes)
		bikes.GET("/search", r.bikeHandler.SearchNear)
		bikes.GET("/:bikeID", r.bikeHandler.GetBike)
	}

	// Payment gateway callback. Authenticity comes from the HMAC signature,
	// not from a session.
	v1.POST("/payments/verify", r.paymentHandler.VerifyPayment)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		// Current user routes
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.PUT("/me", r.userHandler.UpdateUser)

		// Role assignment, owner only
		protected.PUT("/users/roles/:userId",
			middleware.RequireRoles(entity.UserRoleOwner),
			r.userHandler.AssignRole)

		// Bike inventory management, admin/owner only
		manage := protected.Group("/bikes")
		manage.Use(middleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleOwner))
		{
			manage.POST("", r.bikeHandler.CreateBike)
			manage.PUT("/:bikeID", r.bikeHandler.UpdateBike)
			manage.DELETE("/:bikeID", r.bikeHandler.DeleteBike)
		}

		// Identity documents
		protected.POST("/documents", r.documentHandler.Upload)
		protected.GET("/documents/me", r.documentHandler.GetMyDocuments)
		protected.GET("/documents/pending",
			middleware.RequireRoles(entity.UserRoleOwner),
			r.documentHandler.GetPendingDocuments)
		protected.GET("/documents/:documentID", r.documentHandler.GetDocument)
		protected.PUT("/documents/:documentID/review",
			middleware.RequireRoles(entity.UserRoleOwner),
			r.documentHandler.Review)

		// Bookings
		protected.POST("/bookings", r.bookingHandler.CreateBooking)
		protected.GET("/bookings", r.bookingHandler.GetBookings)
		protected.GET("/bookings/:bookingID", r.bookingHandler.GetBooking)
		protected.PUT("/bookings/:bookingID/status",
			middleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleOwner),
			r.bookingHandler.ChangeStatus)
		protected.POST("/bookings/:bookingID/review", r.bookingHandler.AddReview)

		// Payments
		protected.POST("/payments/orders", r.paymentHandler.CreateOrder)
		protected.GET("/payments/:paymentID",
			middleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleOwner),
			r.paymentHandler.GetPayment)
	}
}
