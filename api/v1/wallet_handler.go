package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	api_middleware "github.com/upayanmazumder/TheArenaX/api/middleware"
	"github.com/upayanmazumder/TheArenaX/internal/wallet"
)

var WalletService *wallet.WalletService

func RegisterWalletRoutes(g *echo.Group) {
	g.GET("/transactions", GetTransactionsHandler)
	g.POST("/credits", AddCreditsHandler)
}

func GetTransactionsHandler(c echo.Context) error {
	userID, err := api_middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	transactions, err := WalletService.GetTransactions(userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"transactions": transactions,
	})
}

func AddCreditsHandler(c echo.Context) error {
	userID, err := api_middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req wallet.AddCreditsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	newBalance, err := WalletService.AddCredits(userID, req.Amount)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"wallet_balance": newBalance,
	})
}
