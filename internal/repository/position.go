package repository

import (
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/util"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// nextPosition returns max(position)+1 among the rows of table under parentID,
// or 0 when there are none.
func nextPosition(db *gorm.DB, table interface{}, parentColumn, parentID string) (int, error) {
	var maxPos sql.NullInt64
	row := db.Model(table).
		Where(parentColumn+" = ?", parentID).
		Select("MAX(position)").
		Row()
	if err := row.Scan(&maxPos); err != nil {
		return 0, err
	}
	if !maxPos.Valid {
		return 0, nil
	}
	return int(maxPos.Int64) + 1, nil
}

// updatePositions writes each entry's position in list order. Every id must
// belong to parentID; duplicates are allowed and the last one wins.
func updatePositions(tx *gorm.DB, table interface{}, parentColumn, parentID string, list []model.PositionUpdate) error {
	if len(list) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(list))
	ids := make([]string, 0, len(list))
	for _, item := range list {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}

	var count int64
	if err := tx.Model(table).
		Where("id IN ? AND "+parentColumn+" = ?", ids, parentID).
		Count(&count).Error; err != nil {
		return err
	}
	if int(count) != len(ids) {
		return fmt.Errorf("%w: %d of %d ids under %s", util.ErrReorderTarget, len(ids)-int(count), len(ids), parentID)
	}

	for _, item := range list {
		if err := tx.Model(table).
			Where("id = ?", item.ID).
			Update("position", item.Position).Error; err != nil {
			return err
		}
	}
	return nil
}
