package paramsrpc

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/squarecore/squared/chaincfg"
)

const (
	STRICT_TRANSPORT_SECURITY   = "strict-transport-security"
	CONTENT_SECURITY_POLICY     = "content-security-policy"
	VARY                        = "vary"
	ACCESS_CONTROL_ALLOW_ORIGIN = "access-control-allow-origin"
)

// DefaultListen is the address the server binds when none is given.
const DefaultListen = "127.0.0.1:8066"

type Rpc struct {
	paramsService *Service
	server        *http.Server
}

func NewRpc(params *chaincfg.Params) *Rpc {
	return &Rpc{
		paramsService: NewService(params),
	}
}

// accessLogWriter returns where request logs go: stdout and, when logDir is
// set, a daily rotated file inside it.
func accessLogWriter(logDir string) (io.Writer, error) {
	writers := []io.Writer{os.Stdout}
	if logDir != "" {
		name := filepath.Join(logDir, "squareparams.rpc")
		fileHook, err := rotatelogs.New(
			name+".%Y%m%d%H%M.log",
			rotatelogs.WithLinkName(name+".log"),
			rotatelogs.WithMaxAge(7*24*time.Hour),
			rotatelogs.WithRotationTime(24*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create RotateFile hook, error %s", err)
		}
		writers = append(writers, fileHook)
	}
	return io.MultiWriter(writers...), nil
}

// NewEngine builds the router serving the parameters under proxy.  Request
// logs go to out.
func (s *Rpc) NewEngine(proxy string, out io.Writer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.SetLogger(
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.Output(out).With().
				Str("network", s.paramsService.handle.model.params.Name).
				Logger()
		}),
	))

	config := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	config.OptionsResponseStatusCode = http.StatusOK
	r.Use(cors.New(config))

	// doc
	r.GET(proxy+"/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// common header
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set(VARY, "Origin")
		c.Writer.Header().Add(VARY, "Access-Control-Request-Method")
		c.Writer.Header().Add(VARY, "Access-Control-Request-Headers")

		c.Writer.Header().Set(
			CONTENT_SECURITY_POLICY,
			"default-src 'self'",
		)
		c.Writer.Header().Set(
			STRICT_TRANSPORT_SECURITY,
			"max-age=31536000; includeSubDomains; preload",
		)
		c.Writer.Header().Set(
			ACCESS_CONTROL_ALLOW_ORIGIN,
			"*",
		)

		c.Next()
	})

	// router
	s.paramsService.InitRouter(r, proxy)
	return r
}

// Start serves the parameters on listen until Stop is called.  It returns once
// the listener is bound, so an address already in use is reported here.
func (s *Rpc) Start(listen, proxy, logDir string) error {
	if listen == "" {
		listen = DefaultListen
	}
	gin.SetMode(gin.ReleaseMode)

	out, err := accessLogWriter(logDir)
	if err != nil {
		return err
	}

	l, err := net.Listen("tcp", listen)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", listen)
	}

	s.server = &http.Server{
		Handler:           s.NewEngine(proxy, out),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		err := s.server.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("RPC server on %s stopped: %v", listen, err)
		}
	}()
	log.Infof("RPC server listening on %s%s", l.Addr(), proxy)
	return nil
}

// Stop shuts the server down, waiting for in-flight requests until ctx ends.
func (s *Rpc) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	log.Infof("RPC server shutting down")
	return s.server.Shutdown(ctx)
}
