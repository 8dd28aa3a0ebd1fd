package entity

// Tipos de lista de datos maestros persistidos.
const (
	ReferenceCategories = "categories"
	ReferenceGrades     = "grades"
	ReferenceSizes      = "sizes"
	ReferenceSchedules  = "schedules"
	ReferenceLocations  = "locations"
)

// Listas maestras por defecto, sembradas en la primera lectura vacía.
var (
	DefaultCategories = []string{
		"SR ELBOW", "LR ELBOW", "45 ELBOW", "EQUAL TEE", "UNEQUAL TEE",
		"CON RED", "ECC RED", "STUBEND", "CAP",
	}
	DefaultGrades = []string{
		"304", "304H", "316", "321", "316TI", "DUPLEX2205", "DUPLEX31803",
		"SUPERDUPLEX32750", "SUPERDUPLEXZ32760", "INCONEL625", "TITANIUM",
	}
	DefaultSizes = []string{
		`1/2"`, `3/4"`, `1"`, `1-1/4"`, `1-1/2"`, `2"`, `2-1/2"`, `3"`, `4"`,
		`6"`, `8"`, `10"`, `12"`, `14"`, `16"`, `18"`, `20"`, `24"`, `22"`,
		`26"`, `28"`, `30"`, `32"`, `36"`, `40"`, `42"`,
	}
	DefaultSchedules = []string{
		"S10", "S10S", "S5", "S40", "S40S", "S80", "S80S", "S120", "S100", "S160",
		"XXS", "S20", "S40SXS80S", "S40SXSCH10S", "S60XS80", "S60XS40", "S10XS40",
		"S40XS10", "S80XS40", "XXS X 160", "S30XS10S", "S20XS40", "S40XS160",
		"S80SXS40S", "S20XS10", "S40SXS20", "S30", "S80SXS20", "S60",
	}
	DefaultLocations = []string{"TALOJA GODOWN", "DONGRI GODOWN", "OFFICE GODOWN"}

	// Orígenes y condiciones de costura son listas fijas, no persistidas.
	Origins        = []string{"IMPORTED", "CHINA", "INDIAN"}
	SeamConditions = []string{"SEAMLESS", "PW", "2JOINT"}
)

// DefaultsFor devuelve la lista por defecto de un tipo de referencia, o nil
// si el tipo no existe.
func DefaultsFor(kind string) []string {
	switch kind {
	case ReferenceCategories:
		return DefaultCategories
	case ReferenceGrades:
		return DefaultGrades
	case ReferenceSizes:
		return DefaultSizes
	case ReferenceSchedules:
		return DefaultSchedules
	case ReferenceLocations:
		return DefaultLocations
	}
	return nil
}
