// Example: a fasthttp status endpoint logging through ulog with custom
// level detection.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/notthetup/ulog"
	"github.com/notthetup/ulog/compat"
)

func main() {
	logger, err := ulog.NewBuilder().
		LevelString("info").
		File("http-0.log").
		MaxFiles(3).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(ulog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "status",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Infof("starting status server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "ok %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	if strings.Contains(msg, "connection cannot be served") {
		return ulog.LevelWarnings
	}
	if strings.Contains(msg, "error when serving connection") {
		return ulog.LevelErrors
	}
	return compat.DetectLogLevel(msg)
}
