package repository

import (
	"context"
	"encoding/json"

	"github.com/alanyang/gaas-console/internal/domain/auth"
	"github.com/alanyang/gaas-console/internal/port/rest"
)

type AuthRepo struct {
	client *rest.Client
}

func NewAuthRepo(exec rest.Executor) *AuthRepo {
	return &AuthRepo{client: rest.NewClient(exec)}
}

// Login exchanges credentials for a bearer token. The API answers with the
// bare JWT, either as plain text or as a JSON string.
func (r *AuthRepo) Login(ctx context.Context, username, password string) (auth.Token, error) {
	body := auth.Credentials{Username: username, Password: password}
	resp, err := r.client.Post().Auth().RequestBody(body).Execute(ctx)
	if err != nil {
		return auth.Token{}, err
	}

	raw := string(resp.Body)
	var quoted string
	if err := json.Unmarshal(resp.Body, &quoted); err == nil {
		raw = quoted
	}
	return auth.ParseToken(raw)
}
