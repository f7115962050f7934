package auth

// Claims representa la identidad extraída de la credencial del request.
// Device identifica al uploader (bomba, xDrip, etc.) cuando aplica.
type Claims struct {
	UserID string
	Device string
}
