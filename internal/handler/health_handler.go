package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	info HealthResponse
}

func NewHealthHandler(mode, factsModel, draftModel, promptVersion string) *HealthHandler {
	return &HealthHandler{info: HealthResponse{
		Status:        "healthy",
		HotnessMode:   mode,
		FactsModel:    factsModel,
		DraftModel:    draftModel,
		PromptVersion: promptVersion,
	}}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}
