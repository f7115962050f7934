package treatments

import "time"

// Tipos de evento que suben las bombas/uploaders (subset del vocabulario
// careportal estándar que afecta al cálculo de insulina activa).
const (
	EventTypeBolus           = "Bolus"
	EventTypeMealBolus       = "Meal Bolus"
	EventTypeSnackBolus      = "Snack Bolus"
	EventTypeCorrectionBolus = "Correction Bolus"
	EventTypeTempBasal       = "Temp Basal"
)

// Treatment es un registro de tratamiento subido por bomba/uploader.
// Los nombres de campo JSON siguen el formato careportal (camelCase) para
// ser compatibles con los uploaders existentes.
type Treatment struct {
	ID     string
	UserID string

	EventType string

	// Mills es el timestamp en milisegundos epoch; CreatedAt (RFC3339) es
	// el fallback que mandan algunos uploaders viejos.
	Mills     int64
	CreatedAt string

	Insulin float64 // unidades (bolos)
	Carbs   float64 // gramos

	// Temp basal: rate en U/h sobre duration minutos. Algunas bombas
	// reportan el rate en el campo absolute en vez de rate.
	Rate     float64
	Absolute float64
	Duration float64

	EnteredBy string
	Notes     string
}

// Time resuelve el instante del tratamiento (Mills, con fallback CreatedAt).
func (t Treatment) Time() time.Time {
	if t.Mills > 0 {
		return time.UnixMilli(t.Mills)
	}
	parsed, err := time.Parse(time.RFC3339, t.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func (t Treatment) HasInsulin() bool {
	return t.Insulin > 0
}

func (t Treatment) IsTempBasal() bool {
	return t.EventType == EventTypeTempBasal
}

// DeviceStatus es telemetría cruda del dispositivo (batería, estado del
// loop, etc.). Se acepta y almacena por compatibilidad; el modelo base de
// IOB no la usa todavía.
type DeviceStatus struct {
	ID     string
	UserID string

	Device string
	Mills  int64

	// Payload conserva el JSON original del uploader sin interpretar.
	Payload []byte
}

// Time resuelve el instante del device status.
func (d DeviceStatus) Time() time.Time {
	if d.Mills > 0 {
		return time.UnixMilli(d.Mills)
	}
	return time.Time{}
}
