package rest

import (
	"context"
	"net/http"
	"time"

	"dealScout/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	ModelHandler struct {
		artifactSource ArtifactSource
		strategyName   func() string
	}

	ArtifactSource interface {
		Latest(ctx context.Context) (domain.ModelArtifact, error)
	}

	ModelInfo struct {
		Strategy        string   `json:"strategy"`
		ArtifactVersion string   `json:"artifact_version,omitempty"`
		RMSE            *float64 `json:"rmse,omitempty"`
		RowCount        *int     `json:"row_count,omitempty"`
		TrainedAt       string   `json:"trained_at,omitempty"`
	}
)

func NewModelHandler(artifactSource ArtifactSource, strategyName func() string) *ModelHandler {
	return &ModelHandler{
		artifactSource: artifactSource,
		strategyName:   strategyName,
	}
}

// ModelInfo reports which scoring strategy is live and, when a trained
// artifact exists, its training metadata. A missing artifact is not an
// error here, the fallback strategy is a valid steady state.
func (h *ModelHandler) ModelInfo(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	info := ModelInfo{Strategy: h.strategyName()}

	artifact, err := h.artifactSource.Latest(ctx)
	if err == nil {
		info.ArtifactVersion = artifact.Version
		info.RMSE = &artifact.RMSE
		info.RowCount = &artifact.RowCount
		info.TrainedAt = artifact.CreatedAt.UTC().Format(time.RFC3339)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(info))
}
