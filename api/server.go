package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/travelingtastebuds/ttb-api/auth"
	"github.com/travelingtastebuds/ttb-api/external/tiktok"
	"github.com/travelingtastebuds/ttb-api/store"
)

const maxBodyBytes = 1 << 20

// Server wires every route of the content API onto one gin engine.
type Server struct {
	router *gin.Engine

	mongoStore store.MongoStore
	passwords  *auth.PasswordChecker
	tokens     *auth.TokenIssuer
	tiktok     *tiktok.Client

	traceMode bool
}

func NewServer(
	mongoStore store.MongoStore,
	passwords *auth.PasswordChecker,
	tokens *auth.TokenIssuer,
	tiktokClient *tiktok.Client,
	allowedOrigin string,
	traceMode bool,
) *Server {
	s := &Server{
		mongoStore: mongoStore,
		passwords:  passwords,
		tokens:     tokens,
		tiktok:     tiktokClient,
		traceMode:  traceMode,
	}
	s.router = s.setupRouter(allowedOrigin)
	return s
}

func (s *Server) setupRouter(allowedOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.securityHeaders)
	r.Use(s.limitBodySize)
	r.Use(s.dumpRequest)

	origins := []string{
		"https://travelingtastebuds.org",
		"http://localhost:5500",
		"http://127.0.0.1:5500",
		"http://localhost:3000",
	}
	if allowedOrigin != "" {
		origins = append([]string{allowedOrigin}, origins...)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.Use(mgin.NewMiddleware(limiter.New(memorystore.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  60,
	})))

	api.GET("/health", s.health)

	authRoutes := api.Group("/auth")
	authRoutes.Use(mgin.NewMiddleware(limiter.New(memorystore.NewStore(), limiter.Rate{
		Period: 15 * time.Minute,
		Limit:  10,
	})))
	authRoutes.POST("/login", s.login)
	authRoutes.POST("/verify", s.requireAuth, s.verifyToken)

	spots := api.Group("/spots")
	spots.GET("", s.listSpots)
	spots.GET("/:id", s.getSpot)
	spots.POST("", s.requireAuth, s.createSpot)
	spots.PUT("/:id", s.requireAuth, s.updateSpot)
	spots.DELETE("/:id", s.requireAuth, s.deleteSpot)

	testimonials := api.Group("/testimonials")
	testimonials.GET("", s.listTestimonials)
	testimonials.POST("", s.requireAuth, s.createTestimonial)
	testimonials.PUT("/:id", s.requireAuth, s.updateTestimonial)
	testimonials.DELETE("/:id", s.requireAuth, s.deleteTestimonial)

	packages := api.Group("/packages")
	packages.GET("", s.listPackages)
	packages.POST("", s.requireAuth, s.createPackage)
	packages.PUT("/:id", s.requireAuth, s.updatePackage)
	packages.DELETE("/:id", s.requireAuth, s.deletePackage)

	api.GET("/settings/trustStats", s.getTrustStats)
	api.PUT("/settings/trustStats", s.requireAuth, s.updateTrustStats)

	oembed := api.Group("/tiktok", s.requireAuth)
	oembed.POST("/oembed", s.fetchOEmbed)
	oembed.POST("/oembed/batch", s.fetchOEmbedBatch)

	api.POST("/seed", s.requireAuth, s.seedSpots)

	return r
}

// Run blocks serving HTTP on the given port.
func (s *Server) Run(port int) error {
	return s.router.Run(fmt.Sprintf(":%d", port))
}

// Router exposes the engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
