package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/caderh/caderh-api/docs"
	"github.com/caderh/caderh-api/internal/config"
	"github.com/caderh/caderh-api/internal/middleware"
	"github.com/caderh/caderh-api/internal/modules/handler"
	"github.com/caderh/caderh-api/internal/modules/serializer"
)

type RouterDeps struct {
	Config *config.Config
	Log    *zap.Logger
	// Limiter is nil when redis is not configured.
	Limiter *redis_rate.Limiter
	Tokens  middleware.TokenParser
	Access  middleware.AccessChecker

	AuthHandler            *handler.AuthHandler
	AdminHandler           *handler.AdminHandler
	FinancingSourceHandler *handler.FinancingSourceHandler
	ProjectHandler         *handler.ProjectHandler
	WizardHandler          *handler.WizardHandler
	FileHandler            *handler.FileHandler
	CentrosHandler         *handler.CentrosHandler
	PeopleHandler          *handler.PeopleHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ZapRecovery(d.Log))
	r.Use(cors.New(corsConfig(d.Config)))

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Message{Message: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if d.Config.Storage.Driver == "s3" {
		r.GET("/files/*file", d.FileHandler.Redirect)
	} else {
		r.Static("/files", d.Config.Storage.Root)
	}
	r.GET("/download/*file", d.FileHandler.Download)

	jwt := middleware.JWTAuth(d.Tokens)
	supervisor := middleware.RequireSupervisor()
	byID := middleware.ProjectAccess("id", d.Access, d.Log)
	byProjectID := middleware.ProjectAccess("projectId", d.Access, d.Log)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.Use(middleware.RateLimit(d.Limiter, "auth", d.Config.RateLimit.AuthPerMinute, d.Log))

		auth.POST("/login", d.AuthHandler.Login)
		auth.POST("/new-pass", jwt, d.AuthHandler.NewPassword)
		auth.POST("/recover", d.AuthHandler.Recover)
		auth.POST("/recover_verify", d.AuthHandler.RecoverVerify)
		auth.POST("/recover_password", d.AuthHandler.RecoverPassword)
		auth.POST("/resend_verification_email", d.AuthHandler.ResendVerification)
	}

	admin := api.Group("/admin")
	{
		admin.Use(jwt, middleware.RequireAdmin())

		admin.POST("/user", d.AdminHandler.CreateUser)
		admin.GET("/user", d.AdminHandler.GetUser)
		admin.PUT("/user", d.AdminHandler.UpdateUser)
		admin.GET("/users", d.AdminHandler.ListUsers)
		admin.GET("/logs", d.AdminHandler.ListLogs)
	}

	sup := api.Group("/supervisor")
	{
		sup.Use(jwt)

		fs := d.FinancingSourceHandler
		sup.POST("/financing-source", supervisor, fs.CreateFinancingSource)
		sup.GET("/financing-source", supervisor, fs.GetFinancingSource)
		sup.PUT("/financing-source", supervisor, fs.UpdateFinancingSource)
		sup.DELETE("/financing-source", supervisor, fs.DeleteFinancingSource)
		sup.GET("/financing-sources", supervisor, fs.ListFinancingSources)

		sup.GET("/agents", supervisor, d.ProjectHandler.ListAgentOptions)

		projects := sup.Group("/projects")
		{
			ph := d.ProjectHandler
			projects.GET("", supervisor, ph.ListProjects)
			projects.DELETE("/:id", supervisor, ph.DeleteProject)
			projects.PATCH("/:id/archive", supervisor, ph.ArchiveProject)
			projects.GET("/:id/agents", supervisor, ph.GetProjectAgents)
			projects.PUT("/:id/agents", supervisor, ph.PutProjectAgents)

			projects.GET("/:id", byID, ph.GetProject)
			projects.PATCH("/:id/accomplishments", byID, ph.UpdateAccomplishments)
			projects.GET("/:id/logs", byID, ph.ListProjectLogs)
		}

		wh := d.WizardHandler
		wizard := sup.Group("/project/wizard")
		{
			wizard.POST("/step1", supervisor, wh.Step1)

			wizard.GET("/step2/:projectId", byProjectID, wh.GetStep2)
			wizard.PUT("/step2/:projectId", byProjectID, wh.PutStep2)
			wizard.GET("/step3/:projectId", byProjectID, wh.GetStep3)
			wizard.PUT("/step3/:projectId", byProjectID, wh.PutStep3)
			wizard.GET("/step4/:projectId", byProjectID, wh.GetStep4)
			wizard.PUT("/step4/:projectId", byProjectID, wh.PutStep4)
			wizard.GET("/step5/:projectId", byProjectID, wh.GetStep5)
			wizard.POST("/step5/:projectId", byProjectID, wh.PostStep5)
			wizard.DELETE("/step5/:projectId/:fileId", byProjectID, wh.DeleteStep5)
		}

		project := sup.Group("/project/:projectId", byProjectID)
		{
			project.GET("/file/:fileId/download", wh.DownloadProjectFile)

			project.POST("/financing-source", wh.AddFinancingSource)
			project.DELETE("/financing-source/:id", wh.DeleteFinancingSource)
			project.POST("/donation", wh.AddDonation)
			project.DELETE("/donation/:id", wh.DeleteDonation)
			project.POST("/expense", wh.AddExpense)
			project.DELETE("/expense/:id", wh.DeleteExpense)
		}
	}

	centros := api.Group("/centros")
	{
		centros.Use(jwt)
		read := middleware.RequireAuthenticated()

		ch := d.CentrosHandler
		centros.GET("/areas", read, ch.ListAreas)
		centros.POST("/areas", supervisor, ch.CreateArea)
		centros.PUT("/areas", supervisor, ch.UpdateArea)
		centros.DELETE("/areas/:id", supervisor, ch.DeleteArea)

		centros.GET("/departamentos", read, ch.ListDepartamentos)
		centros.GET("/municipios", read, ch.ListMunicipios)
		centros.GET("/niveles-escolaridad", read, ch.ListNiveles)

		centros.GET("/centros", read, ch.ListCentros)
		centros.GET("/centros/:id", read, ch.GetCentro)
		centros.POST("/centros", supervisor, ch.CreateCentro)
		centros.PUT("/centros/:id", supervisor, ch.UpdateCentro)
		centros.DELETE("/centros/:id", supervisor, ch.DeleteCentro)

		pp := d.PeopleHandler
		centros.GET("/instructores", read, pp.ListInstructores)
		centros.GET("/instructores/:id", read, pp.GetInstructor)
		centros.POST("/instructores", supervisor, pp.CreateInstructor)
		centros.PUT("/instructores/:id", supervisor, pp.UpdateInstructor)
		centros.DELETE("/instructores/:id", supervisor, pp.DeleteInstructor)
		centros.POST("/instructores/:id/cv", supervisor, pp.UploadInstructorCV)
		centros.DELETE("/instructores/:id/cv", supervisor, pp.DeleteInstructorCV)

		centros.GET("/estudiantes", read, pp.ListEstudiantes)
		centros.GET("/estudiantes/:id", read, pp.GetEstudiante)
		centros.POST("/estudiantes", supervisor, pp.CreateEstudiante)
		centros.PUT("/estudiantes/:id", supervisor, pp.UpdateEstudiante)
		centros.DELETE("/estudiantes/:id", supervisor, pp.DeleteEstudiante)
		centros.POST("/estudiantes/:id/cv", supervisor, pp.UploadEstudianteCV)
		centros.DELETE("/estudiantes/:id/cv", supervisor, pp.DeleteEstudianteCV)

		centros.GET("/cursos", read, pp.ListCursos)
		centros.GET("/cursos/:id", read, pp.GetCurso)
		centros.POST("/cursos", supervisor, pp.CreateCurso)
		centros.PUT("/cursos/:id", supervisor, pp.UpdateCurso)
		centros.DELETE("/cursos/:id", supervisor, pp.DeleteCurso)
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition", "X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range cfg.Cors.AllowOrigins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	if len(cfg.Cors.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = cfg.Cors.AllowOrigins
	return cc
}
