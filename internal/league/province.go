package league

import "sort"

// NormalizeProvinceList extracts province names from raw documents, dropping
// entries without a non-empty name, and returns them sorted ascending. An
// empty input yields an empty list, never an error.
func NormalizeProvinceList(raw []map[string]any) []string {
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		if name, ok := r["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// DefaultProvinces are the 18 provinces of Angola, used to seed the
// provinces collection of a fresh deployment.
var DefaultProvinces = []string{
	"Bengo",
	"Benguela",
	"Bié",
	"Cabinda",
	"Cuando Cubango",
	"Cuanza Norte",
	"Cuanza Sul",
	"Cunene",
	"Huambo",
	"Huíla",
	"Luanda",
	"Lunda Norte",
	"Lunda Sul",
	"Malanje",
	"Moxico",
	"Namibe",
	"Uíge",
	"Zaire",
}
