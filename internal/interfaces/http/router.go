package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/empleolibre/empleo-api/internal/application/auth"
	"github.com/empleolibre/empleo-api/internal/application/usecase"
	"github.com/empleolibre/empleo-api/pkg/jwt"
	"github.com/empleolibre/empleo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	JobUC         *usecase.JobUseCase
	ApplicationUC *usecase.ApplicationUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): empresas y postulantes con flujos simétricos
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)

	empresas := api.Group("/auth/empresas")
	empresas.Post("/register", authHandler.RegisterCompany)
	empresas.Post("/verify-otp", authHandler.VerifyCompanyOTP)
	empresas.Post("/login", authHandler.LoginCompany)
	empresas.Post("/password-reset-request", authHandler.RequestCompanyPasswordReset)
	empresas.Post("/reset-password", authHandler.ResetCompanyPassword)

	postulantes := api.Group("/auth/postulantes")
	postulantes.Post("/register", authHandler.RegisterUser)
	postulantes.Post("/verify-otp", authHandler.VerifyUserOTP)
	postulantes.Post("/login", authHandler.LoginUser)
	postulantes.Post("/password-reset-request", authHandler.RequestUserPasswordReset)
	postulantes.Post("/reset-password", authHandler.ResetUserPassword)

	jobHandler := NewJobHandler(deps.JobUC, deps.Log)
	appHandler := NewApplicationHandler(deps.ApplicationUC, deps.Log)

	// Jobs: listado y detalle públicos; mutaciones solo para la empresa dueña
	jobs := api.Group("/jobs")
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)

	// Middleware por ruta: un Use a nivel de grupo interceptaría también las
	// rutas del otro tipo de principal bajo el mismo prefijo.
	autenticado := AuthMiddleware(deps.JWTSecret)
	soloEmpresa := RequirePrincipal(jwt.PrincipalEmpresa)
	soloPostulante := RequirePrincipal(jwt.PrincipalPostulante)

	jobs.Post("/", autenticado, soloEmpresa, jobHandler.Create)
	jobs.Put("/:id", autenticado, soloEmpresa, jobHandler.Update)
	jobs.Post("/:id/close", autenticado, soloEmpresa, jobHandler.Close)
	jobs.Delete("/:id", autenticado, soloEmpresa, jobHandler.Delete)
	jobs.Get("/:id/applicants", autenticado, soloEmpresa, appHandler.ListApplicants)

	// Postulaciones (solo postulante)
	jobs.Post("/:id/apply", autenticado, soloPostulante, appHandler.Apply)

	me := api.Group("/postulantes/me", autenticado, soloPostulante)
	me.Get("/postulaciones", appHandler.AppliedJobs)
}
