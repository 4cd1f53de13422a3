package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/internal/service/draft"
)

// draftService defines the minimal interface needed by DraftHandler.
type draftService interface {
	CreateDraft(ctx context.Context, input draft.CreateDraftInput) (*domain.Draft, error)
	GetDraft(ctx context.Context, draftID uuid.UUID) (*draft.DraftDetail, error)
	ListDrafts(ctx context.Context, input draft.ListDraftsInput) (*draft.DraftList, error)
	RenameDraft(ctx context.Context, input draft.RenameDraftInput) error
	UpdateSlot(ctx context.Context, input draft.UpdateSlotInput) error
	LockDraft(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
}

// DraftHandler serves draft REST endpoints.
type DraftHandler struct {
	svc draftService
	log *slog.Logger
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(svc draftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{svc: svc, log: logger.With("handler", "draft")}
}

type createDraftRequest struct {
	ProductID  uuid.UUID  `json:"product_id"`
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
	Title      *string    `json:"title,omitempty"`
}

type renameDraftRequest struct {
	Title *string `json:"title"`
}

type updateSlotRequest struct {
	Transform  *domain.Transform `json:"transform,omitempty"`
	ImageID    *uuid.UUID        `json:"image_id,omitempty"`
	ClearImage bool              `json:"clear_image,omitempty"`
}

type draftResponse struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	TemplateID uuid.UUID `json:"template_id"`
	State      string    `json:"state"`
	Title      *string   `json:"title,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type slotResponse struct {
	SlotIndex   int               `json:"slot_index"`
	ContentType string            `json:"content_type"`
	Transform   *domain.Transform `json:"transform,omitempty"`
	Image       *imageResponse    `json:"image,omitempty"`
}

type imageResponse struct {
	ID        uuid.UUID `json:"id"`
	SecureURL string    `json:"secure_url"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
}

type draftDetailResponse struct {
	draftResponse
	Slots []slotResponse `json:"slots"`
}

type draftListResponse struct {
	Drafts []draftResponse `json:"drafts"`
	Total  int             `json:"total"`
}

func toDraftResponse(d *domain.Draft) draftResponse {
	return draftResponse{
		ID:         d.ID,
		ProductID:  d.ProductID,
		TemplateID: d.TemplateID,
		State:      string(d.State),
		Title:      d.Title,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toSlotResponse(s domain.DraftSlotDetail) slotResponse {
	resp := slotResponse{
		SlotIndex:   s.SlotIndex,
		ContentType: string(s.ContentType),
		Transform:   s.Transform,
	}
	if s.Image != nil {
		resp.Image = &imageResponse{
			ID:        s.Image.ID,
			SecureURL: s.Image.SecureURL,
			Width:     s.Image.Width,
			Height:    s.Image.Height,
		}
	}
	return resp
}

// Create handles POST /drafts.
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.CreateDraft(r.Context(), draft.CreateDraftInput{
		ProductID:  req.ProductID,
		TemplateID: req.TemplateID,
		Title:      req.Title,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDraftResponse(d))
}

// List handles GET /drafts?limit=20&offset=0.
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListDrafts(r.Context(), draft.ListDraftsInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := draftListResponse{
		Drafts: make([]draftResponse, 0, len(list.Drafts)),
		Total:  list.Total,
	}
	for _, d := range list.Drafts {
		resp.Drafts = append(resp.Drafts, toDraftResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /drafts/{id}.
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	detail, err := h.svc.GetDraft(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := draftDetailResponse{
		draftResponse: toDraftResponse(&detail.Draft),
		Slots:         make([]slotResponse, 0, len(detail.Slots)),
	}
	for _, s := range detail.Slots {
		resp.Slots = append(resp.Slots, toSlotResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Rename handles PATCH /drafts/{id}.
func (h *DraftHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	var req renameDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.RenameDraft(r.Context(), draft.RenameDraftInput{DraftID: id, Title: req.Title}); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateSlot handles PUT /drafts/{id}/slots/{index}.
func (h *DraftHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid slot index")
		return
	}

	var req updateSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := draft.UpdateSlotInput{
		DraftID:    id,
		SlotIndex:  index,
		Transform:  req.Transform,
		ImageID:    req.ImageID,
		ClearImage: req.ClearImage,
	}
	if err := h.svc.UpdateSlot(r.Context(), input); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Lock handles POST /drafts/{id}/lock.
func (h *DraftHandler) Lock(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return
	}

	d, err := h.svc.LockDraft(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

func pathUUID(r *http.Request, key string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(key))
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
