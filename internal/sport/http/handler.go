package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtbook/courtbook-backend/internal/pkg/request"
	"github.com/courtbook/courtbook-backend/internal/pkg/response"
	"github.com/courtbook/courtbook-backend/internal/sport"
)

// Uploaded images are rejected above this size.
const maxImageSize = 10 << 20 // 10 MiB

type Handler struct {
	service sport.Service
}

func NewHandler(service sport.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListSportsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	sports, total, err := h.service.List(c.Request.Context(), sport.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SportResponse, len(sports))
	for i, s := range sports {
		items[i] = NewSportResponse(s)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSportResponse(s))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateSportRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.service.Create(c.Request.Context(), sport.CreateRequest{
		Name:        body.Name,
		ImageURL:    body.ImageURL,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewSportResponse(s))
}

func (h *Handler) UploadImage(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file too large"})
		return
	}

	content, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer content.Close()

	s, err := h.service.SetImage(c.Request.Context(), req.ID, content)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSportResponse(s))
}

func (h *Handler) GetImage(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	content, err := h.service.GetImage(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer content.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, content)
}
