package utils

import (
	"crypto/rand"
	"time"

	"github.com/kataras/iris/v12/middleware/jwt"
)

// TokenExpiry is fixed for every token; there is no refresh flow.
const TokenExpiry = 48 * time.Hour

// AccessToken is the signed token payload: the subject's row id plus role.
type AccessToken struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
}

type TokenService struct {
	signer   *jwt.Signer
	verifier *jwt.Verifier
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		signer:   jwt.NewSigner(jwt.HS256, secret, TokenExpiry),
		verifier: jwt.NewVerifier(jwt.HS256, secret),
	}
}

func (s *TokenService) Sign(id uint, role string) (string, error) {
	token, err := s.signer.Sign(AccessToken{ID: id, Role: role})
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func (s *TokenService) Verify(raw string) (*AccessToken, error) {
	verified, err := s.verifier.VerifyToken([]byte(raw))
	if err != nil {
		return nil, err
	}

	var claims AccessToken
	if err := verified.Claims(&claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// GenerateShortToken returns a URL-safe random hex string of n*2 characters,
// used for upload public ids.
func GenerateShortToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	const hex = "0123456789abcdef"
	out := make([]byte, n*2)
	for i, v := range b {
		out[i*2] = hex[v>>4]
		out[i*2+1] = hex[v&0x0f]
	}
	return string(out)
}
