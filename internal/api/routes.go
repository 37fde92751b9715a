package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brainbox-backend-go/internal/middleware"
	"brainbox-backend-go/internal/token"
)

// MarketingSiteURL is where the root path redirects.
const MarketingSiteURL = "https://gs-brainbox.web.app/"

// SetupRoutes configures all application routes. Global middleware
// (logging, recovery, CORS) is expected to be applied to the router before
// this is called, typically in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	tokenService *token.Service,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	courseHandler *CourseHandler,
	paymentHandler *PaymentHandler,
	billingHandler *BillingHandler,
) {
	authMW := middleware.VerifyToken(tokenService)

	// Root path redirects to the static marketing site.
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, MarketingSiteURL)
	})

	// Public routes.
	router.POST("/auth", authHandler.IssueToken)
	router.POST("/users", userHandler.UpsertUser)
	router.GET("/courses", courseHandler.ListCourses)
	router.GET("/courses/:id/:uid", courseHandler.GetCourseWithStatus)

	// Token-gated routes.
	router.GET("/my-courses/:uid", authMW, courseHandler.ListMyCourses)
	router.GET("/enrolled-courses/:uid", authMW, courseHandler.ListEnrolledCourses)
	router.POST("/courses", authMW, courseHandler.CreateCourse)
	router.PATCH("/courses/:id", authMW, courseHandler.UpdateCourse)
	router.DELETE("/courses/:id", authMW, courseHandler.DeleteCourse)
	router.GET("/payments/:email", authMW, paymentHandler.ListPayments)
	router.POST("/create-payment-intent", authMW, billingHandler.CreatePaymentIntent)
	router.POST("/payments", authMW, paymentHandler.RecordPayment)

	// Health check for load balancers and uptime probes.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured.")
}
