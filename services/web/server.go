package web

import (
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zrxdaly/funda-scraper-web/logger"
	"github.com/zrxdaly/funda-scraper-web/services/session"
	"github.com/zrxdaly/funda-scraper-web/services/worker"
)

// Server is the interactive web front of the scraper: a form page plus a
// small JSON API the page talks to.
type Server struct {
	router  *mux.Router
	session *session.Session
	worker  *worker.Worker
	log     *logger.Logger
	tmpl    *template.Template
}

// NewServer wires the routes for a session and worker pair.
func NewServer(sess *session.Session, w *worker.Worker) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		session: sess,
		worker:  w,
		log:     logger.ForWeb(),
		tmpl:    template.Must(template.New("index").Parse(indexTemplate)),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")

	s.router.HandleFunc("/api/urls", s.handleAddURL).Methods("POST")
	s.router.HandleFunc("/api/urls", s.handleClearURLs).Methods("DELETE")
	s.router.HandleFunc("/api/urls/{index:[0-9]+}", s.handleRemoveURL).Methods("DELETE")
	s.router.HandleFunc("/api/work-addresses", s.handleWorkAddresses).Methods("POST")
	s.router.HandleFunc("/api/debug", s.handleToggleDebug).Methods("POST")
	s.router.HandleFunc("/api/scrape", s.handleScrape).Methods("POST")
	s.router.HandleFunc("/api/results", s.handleResults).Methods("GET")
	s.router.HandleFunc("/api/commutes", s.handleCommute).Methods("POST")
	s.router.HandleFunc("/api/download-link", s.handleDownloadLink).Methods("GET")
	s.router.HandleFunc("/download", s.handleDownload).Methods("GET")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
