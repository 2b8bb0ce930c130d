package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/upayanmazumder/TheArenaX/api/middleware"
	v1 "github.com/upayanmazumder/TheArenaX/api/v1"
	"github.com/upayanmazumder/TheArenaX/internal/apperrors"
	"github.com/upayanmazumder/TheArenaX/internal/live"
	"github.com/upayanmazumder/TheArenaX/internal/session"
	"github.com/upayanmazumder/TheArenaX/internal/tournament"
	"github.com/upayanmazumder/TheArenaX/internal/user"
	"github.com/upayanmazumder/TheArenaX/internal/wallet"
	"github.com/upayanmazumder/TheArenaX/pkg/db"
	"github.com/upayanmazumder/TheArenaX/websocket"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(
		&user.User{},
		&user.Profile{},
		&tournament.Tournament{},
		&tournament.Participant{},
		&wallet.Transaction{},
	)

	sessions := session.NewRedisStore(db.Rdb)
	v1.Sessions = sessions
	v1.UserService = user.NewUserService(user.NewGormUserRepository())
	v1.TournamentService = tournament.NewTournamentService(
		tournament.NewGormTournamentRepository(), sessions, live.Feed{})
	v1.WalletService = wallet.NewWalletService(wallet.NewGormWalletRepository(), sessions)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = appErrorHandler(e)

	e.GET("/", v1.HealthHandler)

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))
	v1.RegisterAdminLoginRoutes(api.Group("/admin"))
	v1.RegisterTournamentRoutes(api.Group("/tournaments"))

	profile := api.Group("/users")
	profile.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterProfileRoutes(profile)

	join := api.Group("/tournaments")
	join.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterJoinRoutes(join)

	walletGroup := api.Group("/wallet")
	walletGroup.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterWalletRoutes(walletGroup)

	admin := api.Group("/admin")
	admin.Use(api_middleware.SetupJWTMiddleware(), api_middleware.RequireAdmin())
	v1.RegisterAdminRoutes(admin)

	e.GET("/live", websocket.LiveFeedHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func appErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if !c.Response().Committed {
				if jsonErr := c.JSON(appErr.Code, echo.Map{"error": appErr.Message}); jsonErr != nil {
					log.Println("Error writing error response:", jsonErr)
				}
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
