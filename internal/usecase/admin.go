package usecase

import "context"

type AdminRepository interface {
	AdminEmail(ctx context.Context) (string, error)
}

// Authorizer is the single-admin policy: a caller is an admin iff their
// email is byte-for-byte equal to the stored admin email. Comparison is
// case-sensitive on purpose; the stored value is canonical. A richer
// role model can replace this without touching the handlers.
type Authorizer struct {
	admins AdminRepository
}

func NewAuthorizer(admins AdminRepository) *Authorizer {
	return &Authorizer{admins: admins}
}

func (a *Authorizer) IsAdmin(ctx context.Context, email string) (bool, error) {
	admin, err := a.admins.AdminEmail(ctx)
	if err != nil {
		return false, err
	}
	return email != "" && email == admin, nil
}
