package handlers

import (
	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"github.com/cgcym1234/authserver/internal/middleware"
	"github.com/cgcym1234/authserver/internal/platform/config"
	"github.com/cgcym1234/authserver/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const webLoginPath = "/web/login"

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	userHandler := NewUserHandler(services.User, services.WeChat)
	authHandler := NewAuthHandler(services.Auth)
	accountHandler := NewAccountHandler(services.User)
	protectedHandler := NewProtectedHandler(services.User)
	webHandler := NewWebHandler(services.User, services.Auth,
		cfg.SessionCookieName, cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction)

	// Credential-sensitive endpoints share one in-memory IP limiter.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	limit := limitergin.NewMiddleware(limiter.New(memory.NewStore(), rate))

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", limit, userHandler.Login)
		users.POST("/newPassword", userHandler.NewPassword)
		users.POST("/changePasswordCode", limit, userHandler.ChangePasswordCode)
		users.GET("/activate", userHandler.ActivateCode)
		users.POST("/oauth/token", userHandler.OAuthToken)
	}

	token := api.Group("/token")
	{
		token.POST("/refresh", authHandler.Refresh)
		token.POST("/revoke", middleware.BasicAuth(services.Auth), middleware.Guard(), authHandler.Revoke)
	}

	account := api.Group("/account", middleware.BearerAuth(services.Auth), middleware.Guard())
	{
		account.GET("/info", accountHandler.Info)
		account.POST("/update", accountHandler.Update)
		account.POST("/logout", authHandler.Logout)
	}

	protected := api.Group("/protected")
	{
		protected.GET("/basic", middleware.BasicAuth(services.Auth), middleware.Guard(), protectedHandler.WhoAmI)
		protected.POST("/token", middleware.BearerAuth(services.Auth), middleware.Guard(), protectedHandler.WhoAmI)
	}

	web := r.Group("/web", middleware.WebSession(cfg.SessionCookieName, cfg.SessionSecret))
	{
		web.POST("/login", limit, webHandler.Login)
		web.POST("/logout", webHandler.Logout)
		web.GET("/account", middleware.GuardWeb(webLoginPath), webHandler.Account)
	}
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("userpassword", utils.ValidUserPassword)
	}
}
