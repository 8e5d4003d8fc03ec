// file: internals/features/documents/documents/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentModel — arsip dokumen (KTP wali, akta kelahiran, surat keterangan, dll).
// File fisik disimpan di disk lokal, baris ini hanya metadata + path.
type DocumentModel struct {
	DocumentID  uint      `json:"document_id" gorm:"column:document_id;primaryKey;autoIncrement"`
	DocumentUID uuid.UUID `json:"document_uid" gorm:"column:document_uid;type:uuid;uniqueIndex;not null"`

	DocumentTitle       string  `json:"document_title" gorm:"column:document_title;type:varchar(200);not null"`
	DocumentDescription *string `json:"document_description" gorm:"column:document_description;type:text"`

	DocumentOrphanID *uint `json:"document_orphan_id" gorm:"column:document_orphan_id;index"`

	DocumentFileName     string     `json:"document_file_name" gorm:"column:document_file_name;type:varchar(255);not null"`
	DocumentStoredPath   string     `json:"document_stored_path" gorm:"column:document_stored_path;type:varchar(500);not null"`
	DocumentContentType  string     `json:"document_content_type" gorm:"column:document_content_type;type:varchar(100)"`
	DocumentSizeBytes    int64      `json:"document_size_bytes" gorm:"column:document_size_bytes"`
	DocumentUploadedByID *uuid.UUID `json:"document_uploaded_by_id" gorm:"column:document_uploaded_by_id;type:uuid"`

	DocumentCreatedAt time.Time `json:"document_created_at" gorm:"column:document_created_at;autoCreateTime"`
	DocumentUpdatedAt time.Time `json:"document_updated_at" gorm:"column:document_updated_at;autoUpdateTime"`
}

func (DocumentModel) TableName() string { return "documents" }
