package v1

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	api_middleware "github.com/upayanmazumder/TheArenaX/api/middleware"
	"github.com/upayanmazumder/TheArenaX/internal/session"
	"github.com/upayanmazumder/TheArenaX/internal/user"
)

var UserService *user.UserService
var Sessions session.Store

func RegisterUserRoutes(g *echo.Group) {
	g.POST("/signup", SignupHandler)
	g.POST("/login", LoginHandler)
}

func RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", GetProfileHandler)
	g.POST("/logout", LogoutHandler)
}

func SignupHandler(c echo.Context) error {
	var req user.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, profile, err := UserService.Signup(req)
	if err != nil {
		return err
	}
	if err := Sessions.Put(profile.ID, profile); err != nil {
		log.Println("Error priming session after signup:", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token, "profile": profile})
}

func LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, profile, err := UserService.Login(req)
	if err != nil {
		return err
	}
	// The token is valid even when the profile fetch failed; the cache is
	// filled later on the first successful profile read.
	if profile != nil {
		if err := Sessions.Put(profile.ID, profile); err != nil {
			log.Println("Error priming session after login:", err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "profile": profile})
}

func GetProfileHandler(c echo.Context) error {
	userID, err := api_middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	profile, err := Sessions.Get(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		profile, err = UserService.GetProfile(userID)
		if err != nil {
			return err
		}
		if err := Sessions.Put(userID, profile); err != nil {
			log.Println("Error caching profile:", err)
		}
	}

	return c.JSON(http.StatusOK, profile)
}

func LogoutHandler(c echo.Context) error {
	userID, err := api_middleware.CurrentUserID(c)
	if err != nil {
		return err
	}
	if err := Sessions.Invalidate(userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}
