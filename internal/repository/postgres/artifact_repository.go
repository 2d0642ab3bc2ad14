package postgres

import (
	"context"
	"errors"
	"fmt"

	"dealScout/domain"

	"gorm.io/gorm"
)

type ArtifactRepository struct {
	DB *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) *ArtifactRepository {
	return &ArtifactRepository{
		DB: db,
	}
}

// Latest returns the newest trained artifact. A missing row is reported
// as a plain error; the caller treats any error as "use the fallback".
func (r *ArtifactRepository) Latest(ctx context.Context) (domain.ModelArtifact, error) {
	if err := ctx.Err(); err != nil {
		return domain.ModelArtifact{}, fmt.Errorf("context error: %w", err)
	}

	var artifact domain.ModelArtifact
	err := r.DB.WithContext(ctx).Order("created_at DESC").First(&artifact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ModelArtifact{}, errors.New("no trained artifact")
		}
		return domain.ModelArtifact{}, fmt.Errorf("failed to load artifact: %w", err)
	}

	return artifact, nil
}

func (r *ArtifactRepository) Save(ctx context.Context, artifact *domain.ModelArtifact) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(artifact).Error; err != nil {
		return fmt.Errorf("failed to save artifact: %w", err)
	}

	return nil
}
