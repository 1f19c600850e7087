package auth

import (
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

// API is the subset of the GoTrue surface the Service depends on. Defining
// the interface here (in the consumer package) lets service tests inject a
// mock without standing up a GoTrue server; NewAPI adapts the real client.
type API interface {
	SignIn(email, password string) (*types.TokenResponse, error)
	SignUp(email, password string, metadata map[string]interface{}) error
	Refresh(refreshToken string) (*types.TokenResponse, error)
	GetUser(accessToken string) (*types.UserResponse, error)
	SignOut(accessToken string) error
}

// gotrueAPI adapts the supabase-go auth client to the API interface.
type gotrueAPI struct {
	client gotrue.Client
}

// NewAPI wraps the auth surface of a Supabase client.
func NewAPI(client *supabase.Client) API {
	return gotrueAPI{client: client.Auth}
}

func (a gotrueAPI) SignIn(email, password string) (*types.TokenResponse, error) {
	return a.client.SignInWithEmailPassword(email, password)
}

func (a gotrueAPI) SignUp(email, password string, metadata map[string]interface{}) error {
	_, err := a.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	return err
}

func (a gotrueAPI) Refresh(refreshToken string) (*types.TokenResponse, error) {
	return a.client.RefreshToken(refreshToken)
}

func (a gotrueAPI) GetUser(accessToken string) (*types.UserResponse, error) {
	return a.client.WithToken(accessToken).GetUser()
}

func (a gotrueAPI) SignOut(accessToken string) error {
	return a.client.WithToken(accessToken).Logout()
}
