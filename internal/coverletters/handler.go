package coverletters

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careercraft-backend/internal/shared/server/middleware"
	"careercraft-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches cover letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cover-letters", h.create)
	rg.GET("/cover-letters", h.list)
	rg.GET("/cover-letters/:id", h.get)
	rg.DELETE("/cover-letters/:id", h.remove)
}

type createRequest struct {
	CompanyName    string `json:"companyName"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
	Tone           string `json:"tone"`
	CoverLetter    Letter `json:"coverLetter"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), CreateInput{
		UserID:         userID,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Tone:           req.Tone,
		Letter:         req.CoverLetter,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "Invalid cover letter", err)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Server error", err)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"success":     true,
		"coverLetter": toResponse(rec),
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	recs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Server error", err)
		return
	}

	items := make([]CoverLetterResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toResponse(rec))
	}

	respond.OK(c, gin.H{
		"success":      true,
		"coverLetters": items,
	})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	rec, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Cover letter not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "Access denied", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	respond.OK(c, gin.H{
		"success":     true,
		"coverLetter": toResponse(rec),
	})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Cover letter not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "Access denied", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"message": "Cover letter deleted successfully",
	})
}
