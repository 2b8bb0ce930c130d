package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/upayanmazumder/TheArenaX/internal/tournament"
	"github.com/upayanmazumder/TheArenaX/internal/user"
)

func RegisterAdminLoginRoutes(g *echo.Group) {
	g.POST("/login", AdminLoginHandler)
}

func RegisterAdminRoutes(g *echo.Group) {
	g.POST("/tournaments", CreateTournamentHandler)
	g.PUT("/tournaments/:id", UpdateTournamentHandler)
	g.DELETE("/tournaments/:id", DeleteTournamentHandler)
}

func AdminLoginHandler(c echo.Context) error {
	var req user.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := UserService.AdminLogin(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func CreateTournamentHandler(c echo.Context) error {
	var t tournament.Tournament
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := TournamentService.CreateTournament(&t)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func UpdateTournamentHandler(c echo.Context) error {
	id, err := tournamentIDParam(c)
	if err != nil {
		return err
	}

	var t tournament.Tournament
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	t.ID = id

	updated, err := TournamentService.UpdateTournament(&t)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func DeleteTournamentHandler(c echo.Context) error {
	id, err := tournamentIDParam(c)
	if err != nil {
		return err
	}

	if err := TournamentService.DeleteTournament(id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
