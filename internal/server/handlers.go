package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	openmusic "github.com/sosehq/openmusic-go"
)

// handleIndex serves the generation form
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := s.templates.ExecuteTemplate(w, "index.html", nil); err != nil {
		s.logger.Error("render index", slog.Any("error", err))
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleGenerate renders one composition from the submitted form. Each
// request gets its own generator so concurrent requests never share a
// random stream; a seed form value pins the output for reproducibility.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	description := r.FormValue("description")

	duration := 10.0
	if v := r.FormValue("duration"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "duration must be a number", http.StatusBadRequest)
			return
		}
		duration = parsed
	}

	style, _ := openmusic.ParseStyle(r.FormValue("style"))

	opts := []openmusic.Option{}
	if v := r.FormValue("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "seed must be an integer", http.StatusBadRequest)
			return
		}
		opts = append(opts, openmusic.WithSeed(seed))
	}

	gen, err := openmusic.NewGenerator(s.config.SampleRate, opts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	started := time.Now()
	comp, err := gen.Generate(description, duration, style)
	if err != nil {
		// ParseFloat accepts "NaN" and "Inf"; they surface here.
		if errors.Is(err, openmusic.ErrInvalidDuration) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error("generate", slog.Any("error", err))
		http.Error(w, "generation failed", http.StatusInternalServerError)
		return
	}

	s.logger.Info("generated",
		slog.String("style", comp.Style.String()),
		slog.String("scale", comp.Scale.String()),
		slog.Float64("duration", comp.Duration),
		slog.Duration("elapsed", time.Since(started)),
	)

	switch r.FormValue("format") {
	case "midi":
		data, err := comp.MIDI()
		if err != nil {
			s.logger.Error("midi export", slog.Any("error", err))
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "audio/midi")
		w.Header().Set("Content-Disposition", `attachment; filename="composition.mid"`)
		w.Write(data)
	case "score":
		data, err := comp.ScoreYAML()
		if err != nil {
			s.logger.Error("score export", slog.Any("error", err))
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(data)
	default:
		wav := comp.WAV()
		w.Header().Set("Content-Type", "audio/wav")
		w.Header().Set("Content-Disposition", `inline; filename="composition.wav"`)
		w.Header().Set("Content-Length", fmt.Sprint(len(wav)))
		w.Write(wav)
	}
}
