package main

import (
	"net/http"

	"projectboard/internal/config"
	"projectboard/internal/logger"
	"projectboard/internal/mysql"
	"projectboard/internal/routing"
	"projectboard/pkg/middleware"
	"projectboard/pkg/session"

	"github.com/gorilla/mux"
)

func main() {
	logger := logger.Load()
	cfg := config.Load(logger)

	db := mysql.LoadDB(cfg.MySQLDSN)
	defer db.Close()

	sessions := session.NewManager([]byte(cfg.JWTSecret))

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	routing.InitRoutes(api, db, sessions, cfg, logger)
	routing.ServeStaticFiles(r)
	routing.ServePages(r)

	// the gate wraps the router itself so unmatched paths under the
	// protected prefix are still rejected, not handed to the mux 404
	var handler http.Handler = r
	handler = middleware.Gate(sessions)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Panic(logger)(handler)

	routing.StartServer(handler, cfg.Addr)
}
