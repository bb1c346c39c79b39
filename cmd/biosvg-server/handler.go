package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/Reverier-Xu/biosvg"
	"github.com/google/uuid"
)

var (
	mu         sync.Mutex
	challenges = make(map[string]Challenge)
)

func handleStart(w http.ResponseWriter, r *http.Request) {
	answer, svg, err := biosvg.NewBuilder().
		Length(cfg.Length).
		Difficulty(cfg.Difficulty).
		Colors(cfg.Colors).
		Build()
	if err != nil {
		http.Error(w, "failed to build captcha: "+err.Error(), http.StatusInternalServerError)
		return
	}

	id := uuid.New().String()
	log.Printf("Challenge %s answer: %s", id, answer)
	mu.Lock()
	challenges[id] = Challenge{Answer: answer}
	mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StartResponse{UUID: id, Image: svg})
}

func handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	// one attempt per challenge
	mu.Lock()
	chal, ok := challenges[req.UUID]
	if ok {
		delete(challenges, req.UUID)
	}
	mu.Unlock()
	if !ok {
		http.Error(w, "uuid not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !strings.EqualFold(strings.TrimSpace(req.Answer), chal.Answer) {
		json.NewEncoder(w).Encode(VerifyResponse{false, "verification failed"})
		return
	}
	json.NewEncoder(w).Encode(VerifyResponse{true, "verification passed"})
}
