package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cubelab/twophase/internal/cube"
)

type SolveRequest struct {
	Facelets       string  `json:"facelets"`
	Scramble       string  `json:"scramble"`
	MaxLength      int     `json:"max_length"`
	TimeoutSeconds float64 `json:"timeout_seconds"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Length   int    `json:"length"`
	TimeMs   int64  `json:"time_ms"`
}

type ScrambleResponse struct {
	Scramble string `json:"scramble"`
	Facelets string `json:"facelets"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<p>Solve a cube: GET /solve/&lt;facelets&gt; or POST /api/solve</p>
<p>Example: <a href="/solve/DUUBULDBFRBFRRULLLBRDFFFBLURDBFDFDRFRULBLUFDURRBLBDUDL">/solve/DUUBULDBFRBFRRULLLBRDFFFBLURDBFDFDRFRULBLUFDURRBLBDUDL</a></p>
<p>Get a scramble: <a href="/api/scramble">/api/scramble</a></p>`)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	facelets := req.Facelets
	if req.Scramble != "" {
		moves, err := cube.ParseScramble(req.Scramble)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cc := cube.FromMoves(moves)
		fc, err := cube.FaceletsFromCubie(&cc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		facelets = fc.String()
	}
	maxLength := req.MaxLength
	if maxLength == 0 {
		maxLength = 20
	}
	timeout := 3 * time.Second
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds * float64(time.Second))
	}
	s.solve(w, facelets, maxLength, timeout)
}

func (s *Server) handleSolveGet(w http.ResponseWriter, r *http.Request) {
	s.solve(w, mux.Vars(r)["facelets"], 20, 3*time.Second)
}

func (s *Server) solve(w http.ResponseWriter, facelets string, maxLength int, timeout time.Duration) {
	result, err := cube.Solve(facelets, maxLength, timeout)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, cube.ErrInvalidFaceletString) || errors.Is(err, cube.ErrInvalidFaceletValue) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, SolveResponse{
		Solution: cube.FormatScramble(result.Solution),
		Length:   len(result.Solution),
		TimeMs:   result.SolveTime.Milliseconds(),
	})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	moves := cube.GenScramble(25, rng)
	cc := cube.FromMoves(moves)
	fc, err := cube.FaceletsFromCubie(&cc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ScrambleResponse{
		Scramble: cube.FormatScramble(moves),
		Facelets: fc.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
