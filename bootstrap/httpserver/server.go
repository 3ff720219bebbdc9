// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/jsonapi"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/services/publicapi"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.String("adapter", "http-server")

type Config interface {
	HttpAddress() string
	Profiling() bool
}

type httpErr struct {
	code     int
	logField *log.Field
	message  string
}

type HttpServer struct {
	httpServer     *http.Server
	logger         log.Logger
	publicApi      publicapi.PublicApi
	metricRegistry metric.Registry
	config         Config
	startTime      time.Time

	port int
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlive(true)
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlivePeriod(35 * time.Second)
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func NewHttpServer(cfg Config, logger log.Logger, publicApi publicapi.PublicApi, metricRegistry metric.Registry) (*HttpServer, error) {
	server := &HttpServer{
		logger:         logger.WithTags(LogTag),
		publicApi:      publicApi,
		metricRegistry: metricRegistry,
		config:         cfg,
		startTime:      time.Now(),
	}

	listener, err := net.Listen("tcp", cfg.HttpAddress())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start http server on %s", cfg.HttpAddress())
	}

	server.port = listener.Addr().(*net.TCPAddr).Port
	server.httpServer = &http.Server{
		Handler: server.createRouter(),
	}

	// Serve on a listener we already hold so a bad address fails here rather than in the background
	govnr.Once(logfields.GovnrErrorer(server.logger), func() {
		if err := server.httpServer.Serve(tcpKeepAliveListener{listener.(*net.TCPListener)}); err != nil && err != http.ErrServerClosed {
			server.logger.Error("http server stopped serving", log.Error(err))
		}
	})

	server.logger.Info("started http server", log.String("address", cfg.HttpAddress()), log.Int("port", server.port))

	return server, nil
}

func (s *HttpServer) Port() int {
	return s.port
}

func (s *HttpServer) GracefulShutdown(shutdownContext context.Context) {
	if err := s.httpServer.Shutdown(shutdownContext); err != nil {
		s.logger.Error("failed to stop http server gracefully", log.Error(err))
	}
}

func (s *HttpServer) createRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)

	router.Post("/api/v1/send-transaction", wrapHandlerWithCORS(s.sendTransactionHandler))
	router.Options("/api/v1/send-transaction", wrapHandlerWithCORS(s.sendTransactionHandler))
	router.Get("/api/v1/counter/{address}", wrapHandlerWithCORS(s.getCounterHandler))
	router.Get("/api/v1/account/{address}", wrapHandlerWithCORS(s.getAccountHandler))
	router.Get("/api/v1/status", wrapHandlerWithCORS(s.getStatus))
	router.Get("/metrics", wrapHandlerWithCORS(s.dumpPrometheusMetrics))
	router.Get("/metrics.json", wrapHandlerWithCORS(s.dumpMetrics))
	router.Get("/robots.txt", s.robots)
	router.Post("/debug/logs/filter-on", s.filterOn)
	router.Post("/debug/logs/filter-off", s.filterOff)

	if s.config.Profiling() {
		registerPprof(router)
	}

	return router
}

func (s *HttpServer) writeErrorResponseAndLog(w http.ResponseWriter, m *httpErr) {
	if m.logField == nil {
		s.logger.Info(m.message)
	} else {
		s.logger.Info(m.message, m.logField)
	}
	s.writeJson(w, m.code, &jsonapi.ErrorOutput{Error: m.message})
}

func registerPprof(router chi.Router) {
	router.HandleFunc("/debug/pprof", pprof.Index)
	router.HandleFunc("/debug/pprof/*", pprof.Index)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
}

// Allows handler to be called via XHR requests from any host
func wrapHandlerWithCORS(f func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
		} else {
			f(w, r)
		}
	}
}
