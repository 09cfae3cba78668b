package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "fish-classification-website/internal/chat/delivery/http"
	classifyHTTP "fish-classification-website/internal/classify/delivery/http"
	"fish-classification-website/internal/middleware"
	"fish-classification-website/internal/model"
	"fish-classification-website/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	// Recovery must render JSON — no failure may reach the client as a
	// non-JSON page.
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		srv.l.Errorf(c.Request.Context(), "panic recovered: %v", err)
		response.ServerError(c)
	}))

	mw := middleware.New(srv.l)
	srv.gin.Use(mw.CORS())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	// Static assets hang off NoRoute so single-segment page paths do not
	// collide with the API routes; it doubles as the JSON 404 handler.
	srv.gin.GET("/", srv.serveIndex)
	srv.gin.NoRoute(srv.serveStatic)
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	chatHandler := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), chatHandler)
	srv.l.Infof(ctx, "Chat routes registered under /api/chat")

	classifyHandler := classifyHTTP.New(srv.l, srv.classifyUC, srv.uploadDir)
	classifyHTTP.RegisterRoutes(api.Group("/classify"), classifyHandler)
	srv.l.Infof(ctx, "Classify routes registered under /api/classify")

	return nil
}
