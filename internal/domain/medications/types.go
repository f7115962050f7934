package medications

// Category clasifica la farmacocinética de un medicamento inyectable.
type Category string

const (
	CategoryUltraRapid   Category = "ultra_rapid"
	CategoryRapidActing  Category = "rapid_acting"
	CategoryShortActing  Category = "short_acting"
	CategoryIntermediate Category = "intermediate"
	CategoryLongActing   Category = "long_acting"
	CategoryUltraLong    Category = "ultra_long"
	CategoryGLP1Daily    Category = "glp1_daily"
	CategoryGLP1Weekly   Category = "glp1_weekly"
	CategoryOther        Category = "other"
)

// AllCategories lista las categorías soportadas (útil para validación y docs).
var AllCategories = []Category{
	CategoryUltraRapid,
	CategoryRapidActing,
	CategoryShortActing,
	CategoryIntermediate,
	CategoryLongActing,
	CategoryUltraLong,
	CategoryGLP1Daily,
	CategoryGLP1Weekly,
	CategoryOther,
}

// ParseCategory valida un string contra las categorías conocidas.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	for _, known := range AllCategories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// ContributesToIOB indica si la categoría aporta insulina activa (IOB).
// Solo las insulinas tipo bolo de acción rápida cuentan; basales e
// incretinas (GLP-1) no siguen la curva de bolo y quedan fuera.
func (c Category) ContributesToIOB() bool {
	switch c {
	case CategoryUltraRapid, CategoryRapidActing, CategoryShortActing:
		return true
	default:
		return false
	}
}
