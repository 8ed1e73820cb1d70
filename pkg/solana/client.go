package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type SignatureState string

const (
	SignatureNotFound  SignatureState = "NOT_FOUND"
	SignaturePending   SignatureState = "PENDING"
	SignatureConfirmed SignatureState = "CONFIRMED"
	SignatureFailed    SignatureState = "FAILED"
)

var ErrMetadataNotFound = errors.New("solana: metadata account not found")

// OffChainAttribute is one entry of the "attributes" array in NFT JSON.
type OffChainAttribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// OffChainMetadata is the JSON document a metadata account's uri points at.
type OffChainMetadata struct {
	Name       string              `json:"name"`
	Symbol     string              `json:"symbol"`
	Image      string              `json:"image"`
	Attributes []OffChainAttribute `json:"attributes"`
}

// Client wraps the Solana JSON-RPC client with the handful of calls the game
// backend needs.
type Client struct {
	rpc        *rpc.Client
	http       *http.Client
	commitment rpc.CommitmentType
}

func NewClient(endpoint, commitment string) *Client {
	return &Client{
		rpc:        rpc.New(endpoint),
		http:       &http.Client{Timeout: 15 * time.Second},
		commitment: parseCommitment(commitment),
	}
}

func parseCommitment(v string) rpc.CommitmentType {
	switch v {
	case "processed":
		return rpc.CommitmentProcessed
	case "finalized":
		return rpc.CommitmentFinalized
	default:
		return rpc.CommitmentConfirmed
	}
}

// FetchMetadata resolves the Metaplex metadata account of mint and follows
// its uri to the off-chain JSON.
func (c *Client) FetchMetadata(ctx context.Context, mint string) (*OnChainMetadata, *OffChainMetadata, error) {
	mintKey, err := solanago.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid mint %q: %w", mint, err)
	}
	addr, err := MetadataAddress(mintKey)
	if err != nil {
		return nil, nil, fmt.Errorf("derive metadata address: %w", err)
	}

	res, err := c.rpc.GetAccountInfoWithOpts(ctx, addr, &rpc.GetAccountInfoOpts{
		Encoding:   solanago.EncodingBase64,
		Commitment: c.commitment,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil, ErrMetadataNotFound
		}
		return nil, nil, fmt.Errorf("getAccountInfo %s: %w", addr, err)
	}
	if res == nil || res.Value == nil || res.Value.Data == nil {
		return nil, nil, ErrMetadataNotFound
	}

	onChain, err := DecodeMetadataAccount(res.Value.Data.GetBinary())
	if err != nil {
		return nil, nil, err
	}
	if onChain.URI == "" {
		return onChain, &OffChainMetadata{Name: onChain.Name, Symbol: onChain.Symbol}, nil
	}

	offChain, err := c.fetchJSON(ctx, onChain.URI)
	if err != nil {
		return onChain, nil, err
	}
	return onChain, offChain, nil
}

func (c *Client) fetchJSON(ctx context.Context, uri string) (*OffChainMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata json: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch metadata json: %s returned %d", uri, resp.StatusCode)
	}

	var out OffChainMetadata
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode metadata json: %w", err)
	}
	return &out, nil
}

// SignatureStatus reports where a transaction signature stands relative to
// the configured commitment.
func (c *Client) SignatureStatus(ctx context.Context, signature string) (SignatureState, error) {
	sig, err := solanago.SignatureFromBase58(signature)
	if err != nil {
		return SignatureFailed, fmt.Errorf("invalid signature %q: %w", signature, err)
	}

	out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return "", fmt.Errorf("getSignatureStatuses: %w", err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return SignatureNotFound, nil
	}
	return classifyStatus(out.Value[0], c.commitment), nil
}

func classifyStatus(st *rpc.SignatureStatusesResult, commitment rpc.CommitmentType) SignatureState {
	if st.Err != nil {
		return SignatureFailed
	}
	if reached(st.ConfirmationStatus, commitment) {
		return SignatureConfirmed
	}
	return SignaturePending
}

func reached(status rpc.ConfirmationStatusType, commitment rpc.CommitmentType) bool {
	rank := map[rpc.ConfirmationStatusType]int{
		rpc.ConfirmationStatusProcessed: 1,
		rpc.ConfirmationStatusConfirmed: 2,
		rpc.ConfirmationStatusFinalized: 3,
	}
	want := map[rpc.CommitmentType]int{
		rpc.CommitmentProcessed: 1,
		rpc.CommitmentConfirmed: 2,
		rpc.CommitmentFinalized: 3,
	}
	return rank[status] >= want[commitment] && rank[status] > 0
}
