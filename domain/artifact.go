package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ModelArtifact is one persisted training run: the fitted preprocessing
// transform and regressor, serialized as a single JSONB payload. The
// serving side loads the newest row at startup.
type ModelArtifact struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Version   string         `gorm:"column:version;type:text;not null" json:"version"`
	Payload   datatypes.JSON `gorm:"column:payload;type:jsonb;not null" json:"payload"`
	RMSE      float64        `gorm:"column:rmse;type:numeric" json:"rmse"`
	RowCount  int            `gorm:"column:row_count" json:"row_count"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ModelArtifact) TableName() string {
	return "model_artifacts"
}
