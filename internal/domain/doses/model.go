package doses

import "time"

// Dose es una dosis inyectable registrada manualmente (pluma/jeringa),
// siempre asociada a un medicamento del usuario.
type Dose struct {
	ID     string
	UserID string

	MedicationID string
	Units        float64

	// TakenAt es el momento de la inyección; RecordedAt cuándo se registró.
	TakenAt    time.Time
	RecordedAt time.Time

	Notes string
}
