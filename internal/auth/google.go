package auth

import (
	"context"
	"fmt"

	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// GoogleProvider implements Provider against the Google Identity Toolkit
// API, the same backend the web client authenticates with.
type GoogleProvider struct {
	svc *identitytoolkit.Service
}

// NewGoogleProvider builds a provider authenticated by API key.
func NewGoogleProvider(ctx context.Context, apiKey string) (*GoogleProvider, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("NewGoogleProvider: failed to create identitytoolkit service: %w", err)
	}
	return &GoogleProvider{svc: svc}, nil
}

func (p *GoogleProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	resp, err := p.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return Identity{}, err
	}
	return Identity{UID: resp.LocalId, Email: resp.Email}, nil
}

func (p *GoogleProvider) SignUp(ctx context.Context, email, password string) (Identity, error) {
	resp, err := p.svc.Relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return Identity{}, err
	}
	return Identity{UID: resp.LocalId, Email: resp.Email}, nil
}

func (p *GoogleProvider) SendPasswordReset(ctx context.Context, email string) error {
	_, err := p.svc.Relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}).Context(ctx).Do()
	return err
}
