// file: internals/helpers/dynamic_update.go
package helper

// FilterAllowedFields membangun map kolom→nilai untuk partial UPDATE.
// Hanya key body yang ada di allow-list yang dipakai; key lain dibuang
// supaya client tidak bisa menulis kolom sembarangan.
func FilterAllowedFields(raw map[string]any, allow map[string]string) map[string]any {
	out := make(map[string]any, len(raw))
	for key, val := range raw {
		if col, ok := allow[key]; ok {
			out[col] = val
		}
	}
	return out
}
