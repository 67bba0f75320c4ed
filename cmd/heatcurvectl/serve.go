package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/chartrender"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/heatcurve"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/viewstate"
)

// NewServeCommand .
func NewServeCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the heating-curve chart over HTTP",
		Long: `Serve the heating-curve chart over HTTP.
All chart parameters are taken from the query string, so a URL produced by the
viewer's Copy Link reproduces the same view.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(configPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (optional)")
	return cmd
}

func ginLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		stop := time.Since(start)
		latency := int(math.Ceil(float64(stop.Nanoseconds()) / 1000000.0))
		statusCode := c.Writer.Status()

		entry := logger.WithFields(logrus.Fields{
			"statusCode": statusCode,
			"latency":    latency,
			"method":     c.Request.Method,
			"path":       path,
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
			return
		}
		msg := fmt.Sprintf("%s %s %d (%dms)", c.Request.Method, path, statusCode, latency)
		if statusCode >= http.StatusInternalServerError {
			entry.Error(msg)
		} else if statusCode >= http.StatusBadRequest {
			entry.Warn(msg)
		} else {
			entry.Debug(msg)
		}
	}
}

func setupRoutes(cfg *serveConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/", getIndex(cfg))
	router.GET("/chart.png", getChartPNG(cfg))
	router.GET("/api/flow", getFlow)

	return router
}

func getIndex(cfg *serveConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		src := "/chart.png"
		if q := c.Request.URL.RawQuery; q != "" {
			src += "?" + q
		}
		p := viewstate.Decode(c.Request.URL.Query())
		result, meta := chartrender.Summary(p)
		page := fmt.Sprintf(`<!doctype html>
<html>
<head><title>calorMATIC 630 Heating Curves</title></head>
<body style="background:#0f172a;color:#e5e7eb;font-family:sans-serif">
<h2>calorMATIC 630 Heating Curves</h2>
<img src=%q width="%d" height="%d" alt="heating curves">
<p><b>%s</b><br>%s</p>
</body>
</html>
`, src, cfg.ChartWidth, cfg.ChartHeight, result, meta)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	}
}

func getChartPNG(cfg *serveConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := viewstate.Decode(c.Request.URL.Query())
		s := chartrender.NewImageSurface(cfg.ChartWidth, cfg.ChartHeight)
		chartrender.Frame(s, p)

		var buf bytes.Buffer
		if err := s.EncodePNG(&buf); err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	}
}

func getFlow(c *gin.Context) {
	p := viewstate.Decode(c.Request.URL.Query())
	flow := heatcurve.FlowTemperature(p.Room, p.Outdoor, p.Slope, p.FlowMin, p.FlowMax)
	c.IndentedJSON(http.StatusOK, gin.H{
		"gain":   heatcurve.GainAt(p.Slope),
		"flow":   flow,
		"params": p,
	})
}

func runServe(cfg *serveConfig) error {
	router := setupRoutes(cfg)
	logrus.Infof("config loaded: %#v", *cfg)

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: router,
	}

	errc := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", cfg.Listen)
		errc <- srv.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-sigc:
		logrus.Infof("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
