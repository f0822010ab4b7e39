package services

import (
	"context"
	stderrors "errors"

	apperrors "qrattendance/errors"
	"qrattendance/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore maps the sheet onto three relational tables.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Init migrates the tables and seeds A1 with the name label.
func (s *GormStore) Init(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(&models.SheetColumn{}, &models.SheetRow{}, &models.SheetCell{}); err != nil {
		return apperrors.StoreError("migrate sheet tables", err)
	}
	if err := db.Where(models.SheetColumn{Position: 1}).
		FirstOrCreate(&models.SheetColumn{Position: 1, Header: NameHeader}).Error; err != nil {
		return apperrors.StoreError("seed header row", err)
	}
	if err := db.Where(models.SheetRow{Position: 1}).
		FirstOrCreate(&models.SheetRow{Position: 1, Name: NameHeader}).Error; err != nil {
		return apperrors.StoreError("seed name column", err)
	}
	return nil
}

func (s *GormStore) Headers(ctx context.Context) ([]string, error) {
	var columns []models.SheetColumn
	if err := s.db.WithContext(ctx).Order("position").Find(&columns).Error; err != nil {
		return nil, apperrors.StoreError("read header row", err)
	}
	headers := make([]string, 0, len(columns))
	for _, c := range columns {
		headers = append(headers, c.Header)
	}
	return headers, nil
}

func (s *GormStore) NameColumn(ctx context.Context) ([]string, error) {
	var rows []models.SheetRow
	if err := s.db.WithContext(ctx).Order("position").Find(&rows).Error; err != nil {
		return nil, apperrors.StoreError("read name column", err)
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *GormStore) AppendName(ctx context.Context, name string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := nextPosition(tx, &models.SheetRow{})
		if err != nil {
			return err
		}
		return tx.Create(&models.SheetRow{Position: next, Name: name}).Error
	})
	if err != nil {
		return apperrors.StoreError("append name", err)
	}
	return nil
}

func (s *GormStore) EnsureDateColumn(ctx context.Context, date string) (int, error) {
	var position int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.SheetColumn
		err := tx.Where("header = ?", date).Order("position").First(&existing).Error
		if err == nil {
			position = existing.Position
			return nil
		}
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		next, err := nextPosition(tx, &models.SheetColumn{})
		if err != nil {
			return err
		}
		position = next
		return tx.Create(&models.SheetColumn{Position: next, Header: date}).Error
	})
	if err != nil {
		return 0, apperrors.StoreError("insert date column", err)
	}
	return position, nil
}

func (s *GormStore) ReadCell(ctx context.Context, row, col int) (string, error) {
	var cell models.SheetCell
	err := s.db.WithContext(ctx).Where("row_index = ? AND col_index = ?", row, col).First(&cell).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", apperrors.StoreError("read cell", err)
	}
	return cell.Value, nil
}

func (s *GormStore) WriteCell(ctx context.Context, row, col int, value string) error {
	cell := models.SheetCell{Row: row, Col: col, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "row_index"}, {Name: "col_index"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&cell).Error
	if err != nil {
		return apperrors.StoreError("write cell", err)
	}
	return nil
}

func nextPosition(tx *gorm.DB, model interface{}) (int, error) {
	var max int
	if err := tx.Model(model).Select("COALESCE(MAX(position), 0)").Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}
