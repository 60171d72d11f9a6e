// Package sportcomplex предоставляет маршруты для основного приложения.
package sportcomplex

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/class/classcreate"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/class/classlist"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/class/classread"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/class/classremove"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/class/classupdate"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/enrollment/enrollmentcreate"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/enrollment/enrollmentlist"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/enrollment/enrollmentlistbyclass"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/enrollment/enrollmentlistbyuser"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/enrollment/enrollmentmy"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/health"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/schedule/schedulecreate"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/schedule/schedulelist"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/schedule/scheduleread"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/schedule/scheduleremove"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/schedule/scheduleupdate"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/sport/sportcreate"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/sport/sportlist"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/sport/sportread"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/sport/sportremove"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/sport/sportupdate"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/user/usercreate"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/user/userlist"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/user/userread"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/user/userremove"
	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/user/userupdate"
	"github.com/magabrotheeeer/sport-complex/internal/http/middlewarectx"
	jwtlib "github.com/magabrotheeeer/sport-complex/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/sport-complex/internal/services/auth"
	classservice "github.com/magabrotheeeer/sport-complex/internal/services/class"
	enrollmentservice "github.com/magabrotheeeer/sport-complex/internal/services/enrollment"
	scheduleservice "github.com/magabrotheeeer/sport-complex/internal/services/schedule"
	sportservice "github.com/magabrotheeeer/sport-complex/internal/services/sport"
	userservice "github.com/magabrotheeeer/sport-complex/internal/services/user"
	"github.com/magabrotheeeer/sport-complex/internal/ws"
)

// Services собирает сервисы бизнес-логики для регистрации маршрутов.
type Services struct {
	Auth       *authservice.Service
	User       *userservice.Service
	Sport      *sportservice.Service
	Class      *classservice.Service
	Schedule   *scheduleservice.Service
	Enrollment *enrollmentservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, tokens jwtlib.Maker, refreshTTL time.Duration, s *Services, wsHandler *ws.Handler) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New().ServeHTTP)

		// Аутентификация с ограничением частоты запросов
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/auth/register", register.New(logger, s.Auth).ServeHTTP)
			r.Post("/auth/login", login.New(logger, s.Auth, refreshTTL).ServeHTTP)
			r.Post("/auth/refresh", refresh.New(logger, s.Auth, refreshTTL).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(tokens, logger))
			r.Post("/auth/logout", logout.New(logger, s.Auth).ServeHTTP)
			r.Get("/auth/me", me.New(logger, s.Auth).ServeHTTP)

			// Каталог доступен любому авторизованному пользователю
			r.Get("/sports", sportlist.New(logger, s.Sport).ServeHTTP)
			r.Get("/sports/{id}", sportread.New(logger, s.Sport).ServeHTTP)
			r.Get("/classes", classlist.New(logger, s.Class).ServeHTTP)
			r.Get("/classes/{id}", classread.New(logger, s.Class).ServeHTTP)
			r.Get("/schedules", schedulelist.New(logger, s.Schedule).ServeHTTP)
			r.Get("/schedules/{id}", scheduleread.New(logger, s.Schedule).ServeHTTP)
			// Чтение пользователя: handler проверяет права (админ или сам пользователь)
			r.Get("/users/{id}", userread.New(logger, s.User).ServeHTTP)

			r.Post("/enrollments", enrollmentcreate.New(logger, s.Enrollment).ServeHTTP)
			r.Get("/enrollments/my", enrollmentmy.New(logger, s.Enrollment).ServeHTTP)

			// Административная группа
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Post("/users", usercreate.New(logger, s.User).ServeHTTP)
				r.Get("/users", userlist.New(logger, s.User).ServeHTTP)
				r.Put("/users/{id}", userupdate.New(logger, s.User).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, s.User).ServeHTTP)
				r.Post("/sports", sportcreate.New(logger, s.Sport).ServeHTTP)
				r.Put("/sports/{id}", sportupdate.New(logger, s.Sport).ServeHTTP)
				r.Delete("/sports/{id}", sportremove.New(logger, s.Sport).ServeHTTP)
				r.Post("/classes", classcreate.New(logger, s.Class).ServeHTTP)
				r.Put("/classes/{id}", classupdate.New(logger, s.Class).ServeHTTP)
				r.Delete("/classes/{id}", classremove.New(logger, s.Class).ServeHTTP)
				r.Post("/schedules", schedulecreate.New(logger, s.Schedule).ServeHTTP)
				r.Put("/schedules/{id}", scheduleupdate.New(logger, s.Schedule).ServeHTTP)
				r.Delete("/schedules/{id}", scheduleremove.New(logger, s.Schedule).ServeHTTP)
				r.Get("/enrollments", enrollmentlist.New(logger, s.Enrollment).ServeHTTP)
				r.Get("/enrollments/class/{id}", enrollmentlistbyclass.New(logger, s.Enrollment).ServeHTTP)
				r.Get("/enrollments/user/{id}", enrollmentlistbyuser.New(logger, s.Enrollment).ServeHTTP)
			})
		})
	})

	// Уведомления о записях для владельцев занятий
	r.Get("/ws/notifications", wsHandler.ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
