package api

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func (s *Server) renderPage(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("Template render failed")
	}
}

// renderErrorPage maps an error for the HTML endpoints, which show the error
// page instead of a JSON body.
func (s *Server) renderErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	s.logger.Error().Err(err).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("Page request failed")

	message := "Internal server error"
	switch status {
	case http.StatusNotFound:
		message = "Page not found"
	case http.StatusBadRequest:
		message = "Invalid request"
	case http.StatusUnauthorized:
		message = "Unauthorized"
	}
	s.renderPage(w, status, "error.html", map[string]string{"Error": message})
}
