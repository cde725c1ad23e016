package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"dineHoursApi/internal/modules/hours/infrastructure"
	"dineHoursApi/internal/shared/auth"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewDatasetStreamHandler exposes /ws/dataset: an authenticated stream that
// pushes a dataset.reloaded event whenever the collection is replaced.
func NewDatasetStreamHandler(hub *infrastructure.Hub, validator auth.TokenValidator, sendBuffer int) func(echo.Context) error {
	if sendBuffer <= 0 {
		sendBuffer = 8
	}
	return func(c echo.Context) error {
		claims, err := validator.Validate(auth.ExtractToken(c.Request()))
		if err != nil {
			status := http.StatusUnauthorized
			message := "invalid token"
			if errors.Is(err, auth.ErrMissingToken) {
				status = http.StatusBadRequest
				message = "missing token"
			}
			slog.Warn("ws dataset stream rejected", slog.Any("error", err))
			return echo.NewHTTPError(status, message)
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws dataset stream upgrade failed", slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, claims.RegisteredClaims.Subject, sendBuffer)
		hub.Attach(client)
		go client.WritePump()
		go client.ReadPump()
		return nil
	}
}
