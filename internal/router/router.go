package router

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	docs "github.com/centsible/backend/api"
	"github.com/centsible/backend/internal/auth"
	"github.com/centsible/backend/internal/config"
	"github.com/centsible/backend/internal/controllers/healthz"
	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/mail"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router sets up the router, middlewares and all API routes.
func Router(cfg *config.Config) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, err
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.Register(r, "debug/pprof")
	}

	docs.SwaggerInfo.Title = "Centsible"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Centsible, a personal finance tracker. Check out the source code at https://github.com/centsible/backend."

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(r.Group("/healthz"))

	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.SessionValidity)

	authController := v1.AuthController{
		Tokens: tokens,
		Mail: mail.SMTPSender{
			Host:     cfg.MailHost,
			Port:     cfg.MailPort,
			Username: cfg.MailUsername,
			Password: cfg.MailPassword,
			From:     cfg.MailFrom,
		},
		BaseURL: cfg.BaseURL,
	}

	// API v1 setup
	group := r.Group("/v1")
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
	}

	authController.RegisterRoutes(group.Group("/auth"))

	// Everything else requires a session token
	protected := group.Group("", v1.RequireAuth(tokens))

	v1.RegisterCategoryRoutes(protected.Group("/categories"))
	v1.RegisterIncomeCategoryRoutes(protected.Group("/income-categories"))
	v1.RegisterSavingsCategoryRoutes(protected.Group("/savings-categories"))
	v1.RegisterBudgetRoutes(protected.Group("/budgets"))
	v1.RegisterExpenseRoutes(protected.Group("/expenses"))
	v1.RegisterIncomeRoutes(protected.Group("/incomes"))
	v1.RegisterSavingsRoutes(protected.Group("/savings"))
	v1.RegisterDashboardRoutes(protected.Group("/dashboard"))
	v1.RegisterNotificationRoutes(protected.Group("/notifications"))
	v1.RegisterAnalyticsRoutes(protected.Group("/analytics"))

	log.Info().Str("version", version).Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/healthz"`      // Health check endpoint
	Version string `json:"version" example:"https://example.com/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/v1"`                // List endpoint for all v1 endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := requestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Auth              string `json:"auth" example:"https://example.com/v1/auth"`
	Categories        string `json:"categories" example:"https://example.com/v1/categories"`
	IncomeCategories  string `json:"incomeCategories" example:"https://example.com/v1/income-categories"`
	SavingsCategories string `json:"savingsCategories" example:"https://example.com/v1/savings-categories"`
	Budgets           string `json:"budgets" example:"https://example.com/v1/budgets"`
	Expenses          string `json:"expenses" example:"https://example.com/v1/expenses"`
	Incomes           string `json:"incomes" example:"https://example.com/v1/incomes"`
	Savings           string `json:"savings" example:"https://example.com/v1/savings"`
	Dashboard         string `json:"dashboard" example:"https://example.com/v1/dashboard"`
	Notifications     string `json:"notifications" example:"https://example.com/v1/notifications"`
	Analytics         string `json:"analytics" example:"https://example.com/v1/analytics"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := requestHost(c) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Auth:              url + "/auth",
			Categories:        url + "/categories",
			IncomeCategories:  url + "/income-categories",
			SavingsCategories: url + "/savings-categories",
			Budgets:           url + "/budgets",
			Expenses:          url + "/expenses",
			Incomes:           url + "/incomes",
			Savings:           url + "/savings",
			Dashboard:         url + "/dashboard",
			Notifications:     url + "/notifications",
			Analytics:         url + "/analytics",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}

// requestHost returns the scheme and host the request was made against.
func requestHost(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	return scheme + "://" + c.Request.Host
}
