// file: internals/features/orphans/relatives/dto/relatives_dto.go
package dto

/*
Allow-list field yang boleh diubah per entitas keluarga.
SET clause partial update dibangun hanya dari irisan key body dengan map ini.
*/

var UpdatableFatherFields = map[string]string{
	"full_name":      "father_full_name",
	"date_of_death":  "father_date_of_death",
	"cause_of_death": "father_cause_of_death",
	"occupation":     "father_occupation",
	"notes":          "father_notes",
}

var UpdatableMotherFields = map[string]string{
	"full_name":        "mother_full_name",
	"marital_status":   "mother_marital_status",
	"is_custodian":     "mother_is_custodian",
	"health_condition": "mother_health_condition",
	"occupation":       "mother_occupation",
	"phone":            "mother_phone",
	"notes":            "mother_notes",
}

var UpdatableGuardianFields = map[string]string{
	"full_name":    "guardian_full_name",
	"relationship": "guardian_relationship",
	"phone":        "guardian_phone",
	"occupation":   "guardian_occupation",
	"notes":        "guardian_notes",
}

var UpdatableSiblingFields = map[string]string{
	"full_name":     "sibling_full_name",
	"date_of_birth": "sibling_date_of_birth",
	"gender":        "sibling_gender",
	"is_studying":   "sibling_is_studying",
	"notes":         "sibling_notes",
}

var UpdatableResidenceFields = map[string]string{
	"country":   "residence_country",
	"city":      "residence_city",
	"district":  "residence_district",
	"address":   "residence_address",
	"condition": "residence_condition",
	"ownership": "residence_ownership",
}
