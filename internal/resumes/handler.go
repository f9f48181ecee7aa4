package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"careercraft-backend/internal/shared/server/middleware"
	"careercraft-backend/internal/shared/server/respond"
)

// maxRequestSize bounds the whole multipart body; the service enforces the
// 5 MiB payload cap on the file itself.
const maxRequestSize = MaxUploadSize + 1<<20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
	rg.DELETE("/resumes/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read file", nil)
		return
	}

	rec, err := h.Svc.Upload(c.Request.Context(), UploadInput{
		UserID:     userID,
		Filename:   fileHeader.Filename,
		ResumeName: c.PostForm("resumeName"),
		MimeType:   fileHeader.Header.Get("Content-Type"),
		Data:       data,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			respond.Error(c, http.StatusBadRequest, "No file uploaded", nil)
		case errors.Is(err, ErrUnsupportedMediaType):
			respond.Error(c, http.StatusBadRequest, "Only PDF, DOC and DOCX files are supported", nil)
		case errors.Is(err, ErrPayloadTooLarge):
			respond.Error(c, http.StatusBadRequest, "File exceeds the 5 MB limit", nil)
		case errors.Is(err, ErrAnalysis):
			respond.Error(c, http.StatusBadGateway, "Resume analysis service failed. Please try again later.", nil)
		case errors.Is(err, ErrStorage):
			respond.Error(c, http.StatusInternalServerError, "Failed to store resume file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	c.Set("resumeId", rec.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"success": true,
		"resume":  toResponse(rec),
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	recs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Server error", err)
		return
	}

	items := make([]ResumeListItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toListItem(rec))
	}

	respond.OK(c, gin.H{
		"success": true,
		"resumes": items,
	})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "Access denied", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	c.Set("resumeId", id)
	respond.OK(c, gin.H{
		"success": true,
		"message": "Resume deleted successfully",
	})
}
