package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/repository/contract"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
)

type IAuthService interface {
	IssueNonce(ctx context.Context, wallet string) (*dto.CsrfResponse, error)
	// ValidateSignedMessage returns nil when message carries csrf as its
	// nonce and signature is the message signer's signature over it.
	ValidateSignedMessage(message, signature, csrf string) error
	// ConsumeSignedMessage validates message against the nonce issued to
	// wallet and burns the nonce.
	ConsumeSignedMessage(ctx context.Context, wallet, message, signature string) error
	Verify(ctx context.Context, req *dto.VerifySignatureRequest) (*dto.SessionResponse, error)
}

type authService struct {
	nonces     contract.NonceStore
	jwtSecret  string
	sessionTTL time.Duration
	nonceTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(nonces contract.NonceStore, jwtSecret string, sessionTTL, nonceTTL time.Duration, log logger.ILogger) IAuthService {
	return &authService{
		nonces:     nonces,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		nonceTTL:   nonceTTL,
		logger:     log,
	}
}

func (s *authService) IssueNonce(ctx context.Context, wallet string) (*dto.CsrfResponse, error) {
	if _, err := solanago.PublicKeyFromBase58(wallet); err != nil {
		return nil, fmt.Errorf("%w: invalid wallet address", serverutils.ErrBadRequest)
	}

	nonce := uuid.NewString()
	if err := s.nonces.Save(ctx, wallet, nonce, s.nonceTTL); err != nil {
		return nil, fmt.Errorf("failed to store csrf token: %w", err)
	}
	return &dto.CsrfResponse{CsrfToken: nonce}, nil
}

func (s *authService) ValidateSignedMessage(message, signature, csrf string) error {
	_, err := s.parseAndVerify(message, signature, csrf)
	return err
}

func (s *authService) parseAndVerify(message, signature, csrf string) (*dto.SignInMessage, error) {
	var msg dto.SignInMessage
	if err := json.Unmarshal([]byte(message), &msg); err != nil {
		return nil, fmt.Errorf("%w: malformed sign-in message", serverutils.ErrUnauthorized)
	}
	if csrf == "" || msg.Nonce != csrf {
		return nil, fmt.Errorf("%w: nonce mismatch", serverutils.ErrUnauthorized)
	}

	pubKey, err := solanago.PublicKeyFromBase58(msg.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid public key", serverutils.ErrUnauthorized)
	}
	sig, err := solanago.SignatureFromBase58(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid signature encoding", serverutils.ErrUnauthorized)
	}
	if !sig.Verify(pubKey, []byte(msg.Prepare())) {
		return nil, fmt.Errorf("%w: could not validate the signed message", serverutils.ErrUnauthorized)
	}
	return &msg, nil
}

func (s *authService) ConsumeSignedMessage(ctx context.Context, wallet, message, signature string) error {
	_, err := s.consume(ctx, wallet, message, signature)
	return err
}

func (s *authService) consume(ctx context.Context, wallet, message, signature string) (*dto.SignInMessage, error) {
	csrf, ok, err := s.nonces.Get(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to load csrf token: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: no csrf token issued for wallet", serverutils.ErrUnauthorized)
	}

	msg, err := s.parseAndVerify(message, signature, csrf)
	if err != nil {
		s.logger.Warn("AUTH", "Signed message rejected", map[string]interface{}{
			"wallet": wallet,
			"error":  err.Error(),
		})
		return nil, err
	}
	if msg.PublicKey != wallet {
		return nil, fmt.Errorf("%w: message was signed by another wallet", serverutils.ErrUnauthorized)
	}

	if err := s.nonces.Delete(ctx, wallet); err != nil {
		s.logger.Warn("AUTH", "Failed to delete consumed csrf token", map[string]interface{}{
			"wallet": wallet,
			"error":  err.Error(),
		})
	}
	return msg, nil
}

func (s *authService) Verify(ctx context.Context, req *dto.VerifySignatureRequest) (*dto.SessionResponse, error) {
	var msg dto.SignInMessage
	if err := json.Unmarshal([]byte(req.Message), &msg); err != nil {
		return nil, fmt.Errorf("%w: malformed sign-in message", serverutils.ErrUnauthorized)
	}

	if _, err := s.consume(ctx, msg.PublicKey, req.Message, req.Signature); err != nil {
		return nil, err
	}

	token, err := serverutils.IssueSessionToken(s.jwtSecret, msg.PublicKey, s.sessionTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "Wallet signed in", map[string]interface{}{
		"wallet": msg.PublicKey,
	})

	return &dto.SessionResponse{
		Token:     token,
		Wallet:    msg.PublicKey,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}, nil
}
