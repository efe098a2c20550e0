package model

import "time"

// Frame pairs a stored payload with its metadata. FrameName is the generated
// object key; the object itself lives in the bucket named after the calendar
// day of RegisteredAt. There is deliberately no user foreign key: any
// authenticated user may act on any frame.
type Frame struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	FrameName string `gorm:"column:frame_name;type:varchar(64);not null;index" json:"frame_name"`

	RegisteredAt time.Time `gorm:"column:registered_at;index" json:"registered_at"`
}

// TableName returns the database table name.
func (Frame) TableName() string {
	return "inbox"
}
