package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(register func(api fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	register(app.Group("/api"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

type stubVersionService struct{ version string }

func (s stubVersionService) GetVersion() (string, error) {
	if s.version == "" {
		return "", errVersionNotFound
	}
	return s.version, nil
}

type stubFeatureService struct {
	featured *dto.FeaturedNFTResponse
	err      error
	lastReq  *dto.FeatureNFTRequest
}

func (s *stubFeatureService) GetRandomFeatured(ctx context.Context) (*dto.FeaturedNFTResponse, error) {
	return s.featured, s.err
}

func (s *stubFeatureService) RequestFeature(ctx context.Context, req *dto.FeatureNFTRequest) (*dto.FeatureNFTResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.FeatureNFTResponse{TxId: req.TxId, State: "PENDING"}, nil
}

type stubWarService struct {
	powers map[string]float64
	got    []string
}

func (s *stubWarService) GetWarriorsPower(ctx context.Context, warriorList []string) (float64, error) {
	s.got = warriorList
	var total float64
	for _, m := range warriorList {
		total += s.powers[m]
	}
	return total, nil
}

type stubPatoService struct {
	calls int
	err   error
}

func (s *stubPatoService) GetAndUpdatePatoArmor(ctx context.Context) error {
	s.calls++
	return s.err
}

type stubAuthService struct {
	err error
}

func (s *stubAuthService) IssueNonce(ctx context.Context, wallet string) (*dto.CsrfResponse, error) {
	return &dto.CsrfResponse{CsrfToken: "nonce-for-" + wallet}, s.err
}

func (s *stubAuthService) ValidateSignedMessage(message, signature, csrf string) error {
	return s.err
}

func (s *stubAuthService) ConsumeSignedMessage(ctx context.Context, wallet, message, signature string) error {
	return s.err
}

func (s *stubAuthService) Verify(ctx context.Context, req *dto.VerifySignatureRequest) (*dto.SessionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SessionResponse{Token: "jwt", Wallet: "w1"}, nil
}

type stubConfigurationService struct {
	gotType       entity.ProductType
	gotCollection string
}

func (s *stubConfigurationService) GetProductsByTypeAndCollection(ctx context.Context, productType entity.ProductType, collection string) []*entity.Product {
	return nil
}

func (s *stubConfigurationService) EnabledProducts(ctx context.Context, productType entity.ProductType, collection string) []*entity.Product {
	return nil
}

func (s *stubConfigurationService) FindEnabledProduct(ctx context.Context, productType entity.ProductType, collection string) *entity.Product {
	return nil
}

func (s *stubConfigurationService) ListProducts(ctx context.Context, productType entity.ProductType, collection string) []*dto.ProductResponse {
	s.gotType = productType
	s.gotCollection = collection
	return []*dto.ProductResponse{{Id: "p1", Type: string(productType), Enabled: true}}
}

type stubTransactionService struct {
	gotWallet string
}

func (s *stubTransactionService) Create(ctx context.Context, tx *entity.RudeTransaction) error {
	return nil
}

func (s *stubTransactionService) Transition(ctx context.Context, txId string, to entity.TransactionState) (*entity.RudeTransaction, error) {
	return nil, nil
}

func (s *stubTransactionService) ListPending(ctx context.Context, service entity.TransactionService) ([]*entity.RudeTransaction, error) {
	return nil, nil
}

func (s *stubTransactionService) ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]*dto.TransactionResponse, error) {
	s.gotWallet = wallet
	return []*dto.TransactionResponse{{TxId: "sig1", Wallet: wallet, State: "SUCCESS"}}, nil
}
