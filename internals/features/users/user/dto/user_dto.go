// file: internals/features/users/user/dto/user_dto.go
package dto

var UpdatableUserFields = map[string]string{
	"name":      "user_name",
	"role":      "user_role",
	"is_active": "user_is_active",
}
