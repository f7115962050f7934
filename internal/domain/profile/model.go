package profile

import "context"

// AmbientProfile es el perfil activo del usuario, solo con lo que el motor
// de IOB necesita: el DIA global de fallback. Se lee del sistema principal;
// aquí es entrada de solo lectura.
type AmbientProfile struct {
	DIAHours float64
}

// Provider entrega el perfil activo de un usuario. Puede devolver (nil, nil)
// si el usuario no tiene perfil configurado; el motor aplica entonces el
// default duro.
type Provider interface {
	Current(ctx context.Context, userID string) (*AmbientProfile, error)
}
