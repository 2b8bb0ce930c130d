package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	api_middleware "github.com/upayanmazumder/TheArenaX/api/middleware"
	"github.com/upayanmazumder/TheArenaX/internal/tournament"
)

const INVALID_REQUEST = "invalid request"

var TournamentService *tournament.TournamentService

func RegisterTournamentRoutes(g *echo.Group) {
	g.GET("", ListTournamentsHandler)
	g.GET("/:id", GetTournamentHandler)
}

func RegisterJoinRoutes(g *echo.Group) {
	g.POST("/:id/join", JoinTournamentHandler)
}

func ListTournamentsHandler(c echo.Context) error {
	filters := tournament.Filters{
		SearchTerm: c.QueryParam("search"),
		Game:       c.QueryParam("game"),
		FeeBracket: c.QueryParam("fee"),
	}

	tournaments, err := TournamentService.GetTournaments(filters)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"tournaments": tournaments,
	})
}

func GetTournamentHandler(c echo.Context) error {
	id, err := tournamentIDParam(c)
	if err != nil {
		return err
	}

	t, err := TournamentService.GetTournament(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, t)
}

func JoinTournamentHandler(c echo.Context) error {
	id, err := tournamentIDParam(c)
	if err != nil {
		return err
	}

	userID, err := api_middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	result, err := TournamentService.JoinTournament(id, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func tournamentIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid tournament ID")
	}
	return uint(id), nil
}
