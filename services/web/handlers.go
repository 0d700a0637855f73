package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zrxdaly/funda-scraper-web/services/export"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

type indexData struct {
	URLs           []string
	WorkAddress1   string
	WorkAddress2   string
	OutputFilename string
	Debug          bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	address1, address2 := s.session.WorkAddresses()
	data := indexData{
		URLs:           s.session.URLs(),
		WorkAddress1:   address1,
		WorkAddress2:   address2,
		OutputFilename: s.session.OutputFilename(),
		Debug:          s.session.Debug(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("Failed to render index page")
	}
}

func (s *Server) handleAddURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.session.AddURL(body.URL); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"urls": s.session.URLs()})
}

func (s *Server) handleRemoveURL(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.session.RemoveURL(index); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"urls": s.session.URLs()})
}

func (s *Server) handleClearURLs(w http.ResponseWriter, r *http.Request) {
	s.session.ClearURLs()
	writeJSON(w, http.StatusOK, map[string]interface{}{"urls": []string{}})
}

func (s *Server) handleWorkAddresses(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WorkAddress1 string `json:"work_address_1"`
		WorkAddress2 string `json:"work_address_2"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.session.SetWorkAddresses(body.WorkAddress1, body.WorkAddress2)
	writeJSON(w, http.StatusOK, map[string]string{
		"work_address_1": body.WorkAddress1,
		"work_address_2": body.WorkAddress2,
	})
}

func (s *Server) handleToggleDebug(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"debug": s.session.ToggleDebug()})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	req := s.session.Request()
	if len(req.URLs) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("add at least one listing URL first"))
		return
	}
	if req.WorkAddress1 == "" && req.WorkAddress2 == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("enter at least one work address"))
		return
	}

	result := s.worker.Run(r.Context(), req)
	s.session.SetResult(result)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	result, ok := s.session.Result()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no scrape result yet"))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCommute(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Index    int    `json:"index"`
		Slot     int    `json:"slot"`
		Duration string `json:"duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.session.SetCommuteTime(body.Index, body.Slot, body.Duration); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDownloadLink(w http.ResponseWriter, r *http.Request) {
	data, err := s.exportResult()
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"link": export.DownloadLink(data, s.session.OutputFilename()),
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	data, err := s.exportResult()
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.session.OutputFilename()))
	w.Write(data)
}

func (s *Server) exportResult() ([]byte, error) {
	result, ok := s.session.Result()
	if !ok {
		return nil, fmt.Errorf("no scrape result yet")
	}
	return export.WriteXLSX(result.Records, result.HasCommute1, result.HasCommute2)
}
