package api

import (
	"net/http"

	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/controller"
	"github.com/labstack/echo/v4"
)

type temperatureResponse struct {
	Celsius float64 `json:"celsius"`
	Average float64 `json:"average"`
}

type fanResponse struct {
	TargetSpeed  uint8 `json:"targetSpeed"`
	AppliedSpeed uint8 `json:"appliedSpeed"`
	SpeedChanges int   `json:"speedChanges"`
}

func registerControllerEndpoints(rest *echo.Echo, fanController controller.FanController) {
	rest.GET("/temperature/", func(c echo.Context) error {
		snapshot := fanController.Snapshot()
		return c.JSONPretty(http.StatusOK, &temperatureResponse{
			Celsius: float64(snapshot.Temperature),
			Average: snapshot.AvgTemperature,
		}, indentationChar)
	})

	rest.GET("/fan/", func(c echo.Context) error {
		snapshot := fanController.Snapshot()
		return c.JSONPretty(http.StatusOK, &fanResponse{
			TargetSpeed:  snapshot.TargetSpeed,
			AppliedSpeed: snapshot.AppliedSpeed,
			SpeedChanges: snapshot.SpeedChanges,
		}, indentationChar)
	})
}
