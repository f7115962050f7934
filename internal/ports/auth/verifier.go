package auth

import "context"

// AuthVerifier verifica una credencial (token de portador o api-secret de
// uploader) y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
