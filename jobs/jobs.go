package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/models"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/rdx"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/store"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const storeTimeout = 5 * time.Second

// Store is the job persistence surface the handlers need.
type Store interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	All(ctx context.Context) ([]models.Job, error)
	ByOwner(ctx context.Context, email string) ([]models.Job, error)
	ByID(ctx context.Context, id string) (*models.Job, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, id string, job *models.Job) error
	Search(ctx context.Context, q models.JobSearch) ([]models.Job, error)
	IncBidCount(ctx context.Context, id string, n int) error
}

// Handler serves the job endpoints.
type Handler struct {
	store  Store
	cache  *rdx.Cache
	logger *zap.Logger
}

func NewHandler(s Store, cache *rdx.Cache, logger *zap.Logger) *Handler {
	return &Handler{store: s, cache: cache, logger: logger}
}

// ------------------ CREATE ------------------

// CreateJob handles POST /add-job.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	job, ok := decodeJob(w, r)
	if !ok {
		return
	}

	created, err := h.store.Create(ctx, job)
	if err != nil {
		h.logger.Error("insert job", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save job")
		return
	}

	h.cache.Del(ctx, rdx.JobsListKey)
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// ------------------ READ ------------------

// GetJobs handles GET /jobs, the public unscoped listing. Served from
// the redis cache when warm.
func (h *Handler) GetJobs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if cached := h.cache.Get(ctx, rdx.JobsListKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	jobs, err := h.store.All(ctx)
	if err != nil {
		h.logger.Error("fetch jobs", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}

	data, err := json.Marshal(jobs)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode jobs")
		return
	}
	h.cache.Set(ctx, rdx.JobsListKey, string(data), time.Minute)

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetJobsByOwner handles GET /jobs/:email, behind the owner guard.
func (h *Handler) GetJobsByOwner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	jobs, err := h.store.ByOwner(ctx, ps.ByName("email"))
	if err != nil {
		h.logger.Error("fetch jobs by owner", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, jobs)
}

// GetJob handles GET /job/:id.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	job, err := h.store.ByID(ctx, ps.ByName("id"))
	if err != nil {
		h.respondStoreError(w, "fetch job", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, job)
}

// SearchJobs handles GET /all-jobs?filter&search&sort.
func (h *Handler) SearchJobs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	q := r.URL.Query()
	jobs, err := h.store.Search(ctx, models.JobSearch{
		Text:     q.Get("search"),
		Category: q.Get("filter"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		h.logger.Error("search jobs", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search jobs")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, jobs)
}

// ------------------ UPDATE ------------------

// UpdateJob handles PUT /update-job/:id with upsert semantics: callers
// supply a complete replacement document.
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	job, ok := decodeJob(w, r)
	if !ok {
		return
	}

	if err := h.store.Upsert(ctx, ps.ByName("id"), job); err != nil {
		h.respondStoreError(w, "upsert job", err)
		return
	}

	h.cache.Del(ctx, rdx.JobsListKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ------------------ DELETE ------------------

// DeleteJob handles DELETE /job/:id. The authenticated caller must be
// the job's buyer.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id := ps.ByName("id")
	job, err := h.store.ByID(ctx, id)
	if err != nil {
		h.respondStoreError(w, "fetch job", err)
		return
	}
	if job.Buyer.Email != utils.GetEmailFromRequest(r) {
		utils.Unauthorized(w)
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		h.respondStoreError(w, "delete job", err)
		return
	}

	h.cache.Del(ctx, rdx.JobsListKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// decodeJob validates and decodes a job request body, zeroing the
// workflow-owned counter. Writes the error response itself on failure.
func decodeJob(w http.ResponseWriter, r *http.Request) (*models.Job, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := models.ValidateJob(body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	var job models.Job
	if err := json.Unmarshal(body, &job); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	job.ID = primitive.NilObjectID
	job.BidCount = 0
	return &job, true
}

func (h *Handler) respondStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
	case errors.Is(err, store.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Job not found")
	default:
		h.logger.Error(op, zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
	}
}
