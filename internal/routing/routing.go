package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"projectboard/internal/config"
	"projectboard/pkg/handlers"
	"projectboard/pkg/project"
	"projectboard/pkg/session"
	"projectboard/pkg/team"
	"projectboard/pkg/user"
)

const staticPath = "./static"

func InitRoutes(api *mux.Router, db *sql.DB, sessions *session.Manager, cfg config.Config, logger *slog.Logger) {

	userService := user.NewService(user.NewMySQLRepo(db))
	authHandler := handlers.NewAuthHandler(userService, sessions, logger, cfg.Env == config.EnvProduction)

	projectService := &project.Service{Repo: project.NewMySQLRepo(db)}
	projectHandler := handlers.NewProjectHandler(projectService, logger)

	teamHandler := handlers.NewTeamHandler(team.NewMySQLRepo(db), logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := api.PathPrefix("/auth").Subrouter()
	projectsRouter := api.PathPrefix("/projects").Subrouter()

	/* auth routers */
	authRouter.HandleFunc("/login", authHandler.Login).Methods("POST").Name("login")
	authRouter.HandleFunc("/logout", authHandler.Logout).Methods("POST").Name("logout")

	/* projects routers */
	projectsRouter.HandleFunc("", projectHandler.List).Methods("GET")
	projectsRouter.HandleFunc("", projectHandler.Create).Methods("POST")
	projectsRouter.HandleFunc("/{project_id:[0-9]+}", projectHandler.Get).Methods("GET")
	projectsRouter.HandleFunc("/{project_id:[0-9]+}", projectHandler.Update).Methods("PUT")
	projectsRouter.HandleFunc("/{project_id:[0-9]+}", projectHandler.Delete).Methods("DELETE")

	/* team routers */
	api.HandleFunc("/team-members", teamHandler.List).Methods("GET")
}

// ServePages registers the two gated pages. Rendering is plain static
// HTML; the gate middleware decides who sees what.
func ServePages(r *mux.Router) {
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, staticPath+"/html/index.html")
	}).Methods("GET")

	r.HandleFunc("/login", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, staticPath+"/html/login.html")
	}).Methods("GET")
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

func StartServer(h http.Handler, addr string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Server failed:", err)
	}
}
