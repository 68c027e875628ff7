package gormstore

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentRecord mirrors the payment_records table.
type PaymentRecord struct {
	ID              string         `gorm:"primaryKey;size:128"`
	PayerName       string         `gorm:"column:name;not null"`
	Reference       string         `gorm:"column:utr;not null"`
	Metadata        datatypes.JSON `gorm:""`
	PendingCount    int64          `gorm:"not null;index:idx_payment_records_pending"`
	Credits         int64          `gorm:"not null"`
	UsedCount       int64          `gorm:"not null"`
	LastSubmittedAt *time.Time     `gorm:""`
	LastApprovedAt  *time.Time     `gorm:""`
	LastUsedAt      *time.Time     `gorm:""`
	CreatedAt       time.Time      `gorm:"not null"`
	UpdatedAt       time.Time      `gorm:"not null"`
}

func (PaymentRecord) TableName() string { return "payment_records" }
