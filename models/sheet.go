package models

import "time"

// SheetColumn is one cell of the header row.
type SheetColumn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Position  int       `gorm:"uniqueIndex;not null" json:"position"`
	Header    string    `gorm:"not null" json:"header"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// SheetRow is one cell of the name column. Names are not unique at the
// database level; registration checks before appending.
type SheetRow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Position  int       `gorm:"uniqueIndex;not null" json:"position"`
	Name      string    `gorm:"index" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// SheetCell is an attendance cell at (Row, Col).
type SheetCell struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Row       int       `gorm:"column:row_index;uniqueIndex:idx_sheet_cell_pos;not null" json:"row"`
	Col       int       `gorm:"column:col_index;uniqueIndex:idx_sheet_cell_pos;not null" json:"col"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
