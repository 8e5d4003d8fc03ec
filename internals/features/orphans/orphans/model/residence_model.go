// file: internals/features/orphans/orphans/model/residence_model.go
package model

import "time"

// ResidenceInfoModel merepresentasikan tabel residence_infos.
// Satu row dimiliki satu anak (one-to-one lewat orphan_residence_id).
type ResidenceInfoModel struct {
	ResidenceID uint `json:"residence_id" gorm:"primaryKey;autoIncrement;column:residence_id"`

	ResidenceCountry  string  `json:"residence_country" gorm:"type:varchar(60);not null;default:Indonesia;column:residence_country"`
	ResidenceCity     *string `json:"residence_city,omitempty" gorm:"type:varchar(120);column:residence_city"`
	ResidenceDistrict *string `json:"residence_district,omitempty" gorm:"type:varchar(120);column:residence_district"`
	ResidenceAddress  *string `json:"residence_address,omitempty" gorm:"type:text;column:residence_address"`

	// kondisi tempat tinggal: good / average / poor
	ResidenceCondition string  `json:"residence_condition" gorm:"type:varchar(30);not null;default:average;column:residence_condition"`
	ResidenceOwnership *string `json:"residence_ownership,omitempty" gorm:"type:varchar(30);column:residence_ownership"`

	ResidenceCreatedAt time.Time `json:"residence_created_at" gorm:"column:residence_created_at;autoCreateTime"`
	ResidenceUpdatedAt time.Time `json:"residence_updated_at" gorm:"column:residence_updated_at;autoUpdateTime"`
}

func (ResidenceInfoModel) TableName() string { return "residence_infos" }
