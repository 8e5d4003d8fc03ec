// file: internals/features/documents/documents/dto/document_dto.go
package dto

var UpdatableDocumentFields = map[string]string{
	"title":       "document_title",
	"description": "document_description",
	"orphan_id":   "document_orphan_id",
}
