// export.go implements GET /trips/export.
// Returns the user's trips as a flat table, as JSON by default or CSV via
// ?format=csv.
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/wanderplan/wanderplan/internal/auth"
	"github.com/wanderplan/wanderplan/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV
// export.
var csvHeaders = []string{
	"id", "destination", "start_date", "end_date",
	"budget", "travel_type", "status", "notes",
}

// ExportTrips handles GET /trips/export.
func (s *Server) ExportTrips(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	rows, err := s.export.Export(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trips": rows})
}

// writeCSV encodes rows as a CSV download.
func writeCSV(w http.ResponseWriter, rows []domain.TripExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			r.ID, r.Destination, r.StartDate, r.EndDate,
			r.Budget, r.TravelType, r.Status, r.Notes,
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
