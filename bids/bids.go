package bids

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
	"go.uber.org/zap"
)

const storeTimeout = 5 * time.Second

const duplicateBidMessage = "You have already placed a bid in this job."

// BidStore is the bid persistence surface the workflow needs.
type BidStore interface {
	Create(ctx context.Context, bid *models.Bid) (*models.Bid, error)
	Exists(ctx context.Context, jobID, email string) (bool, error)
	ByID(ctx context.Context, id string) (*models.Bid, error)
	ForUser(ctx context.Context, email string, asBuyer bool) ([]models.Bid, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// JobStore is the slice of job persistence the workflow touches.
type JobStore interface {
	ByID(ctx context.Context, id string) (*models.Job, error)
	IncBidCount(ctx context.Context, id string, n int) error
}

// Handler serves the bid endpoints.
type Handler struct {
	bids   BidStore
	jobs   JobStore
	cache  *rdx.Cache
	logger *zap.Logger
}

func NewHandler(bids BidStore, jobs JobStore, cache *rdx.Cache, logger *zap.Logger) *Handler {
	return &Handler{bids: bids, jobs: jobs, cache: cache, logger: logger}
}

// PlaceBid handles POST /add-bid: reject duplicates, insert with status
// pending, then bump the parent job's counter.
func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.ValidateBid(body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var bid models.Bid
	if err := json.Unmarshal(body, &bid); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	bid.Status = models.BidPending

	job, err := h.jobs.ByID(ctx, bid.JobID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		default:
			h.logger.Error("fetch job for bid", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}
	// owner reference comes from the job, never from the client
	bid.Buyer = job.Buyer.Email

	exists, err := h.bids.Exists(ctx, bid.JobID, bid.Email)
	if err != nil {
		h.logger.Error("check existing bid", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		http.Error(w, duplicateBidMessage, http.StatusBadRequest)
		return
	}

	created, err := h.bids.Create(ctx, &bid)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// the unique (email, jobId) index closes the
			// check-then-insert race
			http.Error(w, duplicateBidMessage, http.StatusBadRequest)
			return
		}
		h.logger.Error("insert bid", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save bid")
		return
	}

	if err := h.jobs.IncBidCount(ctx, bid.JobID, 1); err != nil {
		// the bid is already persisted; the counter can be rebuilt from
		// the bids collection
		h.logger.Error("increment bid count", zap.String("jobId", bid.JobID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update bid count")
		return
	}

	h.cache.Del(ctx, rdx.JobsListKey)
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// GetBidsForUser handles GET /bids/:email?buyer=, behind the owner
// guard. The buyer flag switches between bids received and bids placed.
func (h *Handler) GetBidsForUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	asBuyer := r.URL.Query().Get("buyer") != ""
	bids, err := h.bids.ForUser(ctx, ps.ByName("email"), asBuyer)
	if err != nil {
		h.logger.Error("fetch bids", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bids")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bids)
}

// UpdateBidStatus handles PATCH /bid-status-update/:id. Only the job's
// buyer may move a bid through the pending/accepted/rejected set.
func (h *Handler) UpdateBidStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.ValidBidStatus(body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unrecognized bid status")
		return
	}

	id := ps.ByName("id")
	bid, err := h.bids.ByID(ctx, id)
	if err != nil {
		h.respondStoreError(w, "fetch bid", err)
		return
	}
	if bid.Buyer != utils.GetEmailFromRequest(r) {
		utils.Unauthorized(w)
		return
	}

	if err := h.bids.UpdateStatus(ctx, id, body.Status); err != nil {
		h.respondStoreError(w, "update bid status", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) respondStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bid id")
	case errors.Is(err, store.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Bid not found")
	default:
		h.logger.Error(op, zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
	}
}
