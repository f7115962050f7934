package medications

import "time"

// Medication representa un medicamento inyectable registrado por el usuario
// (insulinas de pluma/jeringa, GLP-1, etc.).
type Medication struct {
	ID          string
	OwnerUserID string

	Name     string
	Category Category

	// Overrides farmacocinéticos por medicamento. nil = usar el DIA del
	// perfil (o el default duro) y el pico default. Permiten modelar
	// insulinas más rápidas o lentas (Fiasp 3.5h, Regular 6h) sin tocar
	// el perfil completo.
	DIAHours    *float64
	PeakMinutes *float64

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
