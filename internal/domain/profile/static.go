package profile

import "context"

// Static es un Provider fijo para dev y tests.
type Static struct {
	Profile *AmbientProfile
}

func (s Static) Current(ctx context.Context, userID string) (*AmbientProfile, error) {
	return s.Profile, nil
}
