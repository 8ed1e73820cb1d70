package dto

import "time"

// SignInMessage is the JSON document a wallet signs to prove ownership.
type SignInMessage struct {
	Domain    string `json:"domain"`
	PublicKey string `json:"publicKey"`
	Nonce     string `json:"nonce"`
	Statement string `json:"statement"`
}

// Prepare returns the exact text the wallet signed.
func (m SignInMessage) Prepare() string {
	return m.Statement + m.Nonce
}

type CsrfResponse struct {
	CsrfToken string `json:"csrfToken"`
}

type VerifySignatureRequest struct {
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	Wallet    string    `json:"wallet"`
	ExpiresAt time.Time `json:"expiresAt"`
}
