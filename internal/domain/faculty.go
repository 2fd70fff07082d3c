package domain

// FacultyUniversal grants access to university-wide activities. It is
// appended to every non-empty faculty set.
const FacultyUniversal = "UNI"

// categoryFaculties maps a two-letter course-category code to the faculty
// tokens it represents. Several categories are joint faculties and map to
// two tokens. Unmapped codes contribute nothing.
var categoryFaculties = map[string][]string{
	"BU": {"BUS"},
	"HL": {"HLS"},
	"HS": {"HSS"},
	"TD": {"TDE"},
	"BH": {"BUS", "HSS"},
	"BL": {"BUS", "HLS"},
	"BT": {"BUS", "TDE"},
	"HH": {"HLS", "HSS"},
	"HT": {"HSS", "TDE"},
	"LT": {"HLS", "TDE"},
}

// ResolveFaculties maps course-category codes to the union of their faculty
// tokens, de-duplicated, and appends the universal token when the result is
// non-empty. Order follows first appearance.
func ResolveFaculties(categories []string) []string {
	var faculties []string
	seen := make(map[string]bool)
	for _, category := range categories {
		for _, f := range categoryFaculties[category] {
			if !seen[f] {
				seen[f] = true
				faculties = append(faculties, f)
			}
		}
	}
	if len(faculties) > 0 {
		faculties = append(faculties, FacultyUniversal)
	}
	return faculties
}
