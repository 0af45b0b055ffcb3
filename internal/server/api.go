package server

import (
	"encoding/json"
	"net/http"

	"github.com/lrendell/fitimport/internal/importer"
	"github.com/lrendell/fitimport/internal/scanner"
	"github.com/lrendell/fitimport/internal/voice"
)

type matchRequest struct {
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold,omitempty"`
}

type matchResponse struct {
	Matched bool    `json:"matched"`
	Name    string  `json:"name,omitempty"`
	ID      string  `json:"id,omitempty"`
	Score   float64 `json:"score,omitempty"`
	Tier    string  `json:"tier,omitempty"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if !decodePost(w, r, &req) {
		return
	}
	threshold := req.Threshold
	if threshold == 0 {
		threshold = s.cfg.AIThreshold
	}

	res := s.engine.FindBestMatch(req.Name, threshold)
	if res == nil {
		writeJSON(w, matchResponse{Matched: false})
		return
	}
	writeJSON(w, matchResponse{
		Matched: true,
		Name:    res.Exercise.Name,
		ID:      res.Exercise.ID,
		Score:   res.Score,
		Tier:    string(res.Tier),
	})
}

type scanRequest struct {
	Text string `json:"text"`
}

type scanMention struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	ID    string `json:"exerciseId"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if !decodePost(w, r, &req) {
		return
	}

	mentions := scanner.FindAllMentions(s.engine.Index(), req.Text)
	out := make([]scanMention, 0, len(mentions))
	for _, m := range mentions {
		out = append(out, scanMention{Name: m.Name, Start: m.Start, End: m.End, ID: m.Exercise.ID})
	}
	writeJSON(w, out)
}

type voiceRequest struct {
	Transcript    string `json:"transcript"`
	KnownExercise string `json:"knownExercise,omitempty"`
}

type voiceResponse struct {
	ExerciseName string      `json:"exerciseName"`
	Matched      string      `json:"matched,omitempty"`
	Score        float64     `json:"score,omitempty"`
	Sets         []voice.Set `json:"sets"`
	Confidence   string      `json:"confidence"`
}

func (s *Server) handleVoice(w http.ResponseWriter, r *http.Request) {
	var req voiceRequest
	if !decodePost(w, r, &req) {
		return
	}

	res := voice.Parse(s.engine, req.Transcript, voice.Options{
		KnownExercise:     req.KnownExercise,
		Threshold:         s.cfg.VoiceThreshold,
		KeepDuplicateSets: s.cfg.KeepDuplicateSets,
	})

	resp := voiceResponse{
		ExerciseName: res.ExerciseName,
		Sets:         res.Sets,
		Confidence:   string(res.Confidence),
	}
	if res.Match != nil {
		resp.Matched = res.Match.Exercise.Name
		resp.Score = res.Match.Score
	}
	writeJSON(w, resp)
}

func (s *Server) handleImportWorkout(w http.ResponseWriter, r *http.Request) {
	var in importer.WorkoutInput
	if !decodePost(w, r, &in) {
		return
	}
	writeJSON(w, s.norm.NormalizeWorkout(in))
}

func (s *Server) handleImportRecipe(w http.ResponseWriter, r *http.Request) {
	var in importer.RecipeInput
	if !decodePost(w, r, &in) {
		return
	}
	writeJSON(w, s.norm.NormalizeRecipe(in))
}

func decodePost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
