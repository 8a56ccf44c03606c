// roster/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/tabajaradev/static-roster/roster/service"
	"github.com/tabajaradev/static-roster/shared/api"
	"github.com/tabajaradev/static-roster/shared/models"
)

// StaticService is the business-logic surface the handlers need for groups.
type StaticService interface {
	CreateStatic(ctx context.Context, name string) (string, error)
}

// TeammateService is the business-logic surface the handlers need for teammates.
type TeammateService interface {
	Upsert(ctx context.Context, tm *models.StaticTeammate) (bool, error)
	ListByStatic(ctx context.Context, guid string) ([]models.StaticTeammate, error)
}

// RosterAPIHandlers holds references to the services that handle business logic.
type RosterAPIHandlers struct {
	StaticService       StaticService
	TeammateService     TeammateService
	RequestTimeout      time.Duration
	NotFoundOnEmptyList bool
}

// NewRosterAPIHandlers is the constructor for the API handlers.
func NewRosterAPIHandlers(ss StaticService, ts TeammateService, requestTimeout time.Duration, notFoundOnEmptyList bool) *RosterAPIHandlers {
	return &RosterAPIHandlers{
		StaticService:       ss,
		TeammateService:     ts,
		RequestTimeout:      requestTimeout,
		NotFoundOnEmptyList: notFoundOnEmptyList,
	}
}

// --- Request/Response DTOs ---

type CreateStaticRequest struct {
	Name string `json:"name"`
}

type CreateStaticResponse struct {
	GUID string `json:"guid"`
}

// --- Handler Methods ---

// CreateStaticHandler handles requests to create a new Static group.
// POST /static
func (rah *RosterAPIHandlers) CreateStaticHandler(w http.ResponseWriter, r *http.Request) {
	var req *CreateStaticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("WARN: POST /static: Invalid JSON: %v", err)
		api.WriteText(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req == nil || strings.TrimSpace(req.Name) == "" {
		log.Printf("WARN: POST /static: Missing or invalid name")
		api.WriteText(w, http.StatusBadRequest, "Missing or invalid name")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rah.RequestTimeout)
	defer cancel()

	guid, err := rah.StaticService.CreateStatic(ctx, req.Name)
	if err != nil {
		log.Printf("ERROR: POST /static: Error creating static: %v", err)
		api.WriteText(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	api.WriteJSON(w, http.StatusCreated, CreateStaticResponse{GUID: guid})
	log.Printf("INFO: Static '%s' created with guid %s.", req.Name, guid)
}

// ListTeammatesHandler handles requests to list every teammate in a group.
// GET /static?guid=<static guid>
func (rah *RosterAPIHandlers) ListTeammatesHandler(w http.ResponseWriter, r *http.Request) {
	guid := r.URL.Query().Get("guid")
	if guid == "" {
		log.Printf("WARN: GET /static: Missing guid parameter")
		api.WriteText(w, http.StatusBadRequest, "Missing guid parameter")
		return
	}
	if _, err := uuid.Parse(guid); err != nil {
		log.Printf("WARN: GET /static: Invalid guid format '%s'", guid)
		api.WriteText(w, http.StatusBadRequest, "Invalid guid format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rah.RequestTimeout)
	defer cancel()

	teammates, err := rah.TeammateService.ListByStatic(ctx, guid)
	if err != nil {
		log.Printf("ERROR: GET /static: Error fetching teammates for guid %s: %v", guid, err)
		api.WriteText(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(teammates) == 0 && rah.NotFoundOnEmptyList {
		api.WriteText(w, http.StatusNotFound, "No teammates found for the provided guid")
		return
	}

	api.WriteJSON(w, http.StatusOK, teammates)
}

// UpsertTeammateHandler handles requests to insert or update a teammate,
// keyed by (name, staticGuid).
// POST /staticmember
func (rah *RosterAPIHandlers) UpsertTeammateHandler(w http.ResponseWriter, r *http.Request) {
	var tm *models.StaticTeammate
	if err := json.NewDecoder(r.Body).Decode(&tm); err != nil {
		log.Printf("WARN: POST /staticmember: Invalid JSON: %v", err)
		api.WriteText(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if tm == nil {
		log.Printf("WARN: POST /staticmember: Invalid payload (null teammate)")
		api.WriteText(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rah.RequestTimeout)
	defer cancel()

	created, err := rah.TeammateService.Upsert(ctx, tm)
	if err != nil {
		if errors.Is(err, service.ErrStaticNotFound) {
			log.Printf("WARN: POST /staticmember: Static %s does not exist", tm.StaticGUID)
			api.WriteText(w, http.StatusBadRequest, "Static with provided StaticGUID does not exist")
			return
		}
		log.Printf("ERROR: POST /staticmember: Unexpected error: %v", err)
		api.WriteText(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if created {
		api.WriteText(w, http.StatusCreated, "Inserted")
	} else {
		api.WriteText(w, http.StatusOK, "Updated")
	}
}

// NotFoundHandler answers every unrouted (method, path) pair.
func (rah *RosterAPIHandlers) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteText(w, http.StatusNotFound, "Not found")
}

// RegisterRoutes registers all API endpoints for the roster service.
func (rah *RosterAPIHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/static", rah.CreateStaticHandler).Methods("POST")
	router.HandleFunc("/static", rah.ListTeammatesHandler).Methods("GET")
	router.HandleFunc("/staticmember", rah.UpsertTeammateHandler).Methods("POST")

	// Unknown paths and wrong methods both answer 404 "Not found". These
	// handlers bypass router middleware, which is why logging, CORS, the
	// path normalizer and the secret gate are all mounted outside the
	// router by the base server.
	router.NotFoundHandler = http.HandlerFunc(rah.NotFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(rah.NotFoundHandler)
}
