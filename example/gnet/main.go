// Example: routing gnet engine diagnostics through a rotated ulog file.
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/notthetup/ulog"
	"github.com/notthetup/ulog/compat"
)

// Minimal acoustic-gateway style echo handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := ulog.NewBuilder().
		LevelString("debug").
		File("gateway-0.log").
		MaxFiles(4).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	gnetAdapter := compat.NewGnetAdapter(logger)

	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		logger.Fatalf("gnet engine stopped: %v", err)
	}
}
