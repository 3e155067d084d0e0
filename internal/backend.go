package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/api"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/configuration"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/controller"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ec"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/statistics"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Raw EC port access requires root permissions, please run as root")
	}

	device, err := ec.NewPortDevice()
	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}

	fanController := controller.NewFanController(ec.NewDriver(device), controller.RefreshRate)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if configuration.CurrentConfig.Statistics.Enabled {
			// === Prometheus Exporter
			statistics.Register(statistics.NewControllerCollector(fanController))

			g.Add(func() error {
				port := portOrFallback(configuration.CurrentConfig.Statistics.Port, 9000)
				addr := fmt.Sprintf(":%d", port)
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				server := &http.Server{Addr: addr, Handler: mux}

				go func() {
					<-ctx.Done()
					ui.Info("Stopping statistics server...")
					timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer timeoutCancel()
					_ = server.Shutdown(timeoutCtx)
				}()

				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start prometheus metrics endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				if err != nil {
					ui.Warning("Error stopping statistics server: " + err.Error())
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		if configuration.CurrentConfig.Api.Enabled {
			// === REST status API
			restServer := api.CreateRestService(fanController)

			g.Add(func() error {
				port := portOrFallback(configuration.CurrentConfig.Api.Port, 9001)
				addr := fmt.Sprintf(":%d", port)

				go func() {
					<-ctx.Done()
					ui.Info("Stopping status API...")
					timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer timeoutCancel()
					_ = restServer.Shutdown(timeoutCtx)
				}()

				if err := restServer.Start(addr); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start status API (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				if err != nil {
					ui.Warning("Error stopping status API: " + err.Error())
				} else {
					ui.Info("Status API stopped.")
				}
			})
		}
	}
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			if err != nil {
				ui.Error("Fan controller stopped: %v", err)
			} else {
				ui.Info("Fan controller stopped.")
			}
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// portOrFallback returns the configured port, or the fallback when it is out
// of range.
func portOrFallback(port int, fallback int) int {
	if port <= 0 || port >= 65535 {
		return fallback
	}
	return port
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
	}
	return strings.TrimSpace(string(stdout))
}
