package solana

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// NativeToken is the token name product amounts use for lamport transfers.
const NativeToken = "SOL"

const lamportsPerSol = 1_000_000_000

var ErrTransactionNotFound = errors.New("solana: transaction not found")

// Payment summarizes who signed a transaction and what each owner gained.
type Payment struct {
	Signers []string
	// received[owner][token] is the positive balance change, in UI units.
	// Native SOL is keyed by NativeToken, SPL tokens by mint address.
	received map[string]map[string]float64
}

func NewPayment(signers ...string) *Payment {
	return &Payment{
		Signers:  signers,
		received: make(map[string]map[string]float64),
	}
}

func (p *Payment) SignedBy(wallet string) bool {
	for _, s := range p.Signers {
		if s == wallet {
			return true
		}
	}
	return false
}

// Received reports how much of token the owner gained in the transaction.
func (p *Payment) Received(owner, token string) float64 {
	if strings.EqualFold(token, NativeToken) {
		token = NativeToken
	}
	return p.received[owner][token]
}

// Credit records a balance gain. Non-positive amounts are ignored.
func (p *Payment) Credit(owner, token string, amount float64) *Payment {
	if strings.EqualFold(token, NativeToken) {
		token = NativeToken
	}
	if amount <= 0 {
		return p
	}
	if p.received[owner] == nil {
		p.received[owner] = make(map[string]float64)
	}
	p.received[owner][token] += amount
	return p
}

// FetchPayment loads a confirmed transaction and summarizes its transfers.
func (c *Client) FetchPayment(ctx context.Context, signature string) (*Payment, error) {
	sig, err := solanago.SignatureFromBase58(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid signature %q: %w", signature, err)
	}

	maxVersion := uint64(0)
	out, err := c.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solanago.EncodingBase64,
		Commitment:                     c.commitment,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("getTransaction: %w", err)
	}
	if out == nil || out.Transaction == nil || out.Meta == nil {
		return nil, ErrTransactionNotFound
	}

	tx, err := out.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return summarizePayment(tx, out.Meta)
}

func summarizePayment(tx *solanago.Transaction, meta *rpc.TransactionMeta) (*Payment, error) {
	if meta.Err != nil {
		return nil, fmt.Errorf("transaction failed on chain: %v", meta.Err)
	}

	// balances are indexed over static keys followed by lookup-table keys
	keys := make(solanago.PublicKeySlice, 0, len(tx.Message.AccountKeys)+len(meta.LoadedAddresses.Writable)+len(meta.LoadedAddresses.ReadOnly))
	keys = append(keys, tx.Message.AccountKeys...)
	keys = append(keys, meta.LoadedAddresses.Writable...)
	keys = append(keys, meta.LoadedAddresses.ReadOnly...)

	p := NewPayment()
	signers := int(tx.Message.Header.NumRequiredSignatures)
	for i := 0; i < signers && i < len(tx.Message.AccountKeys); i++ {
		p.Signers = append(p.Signers, tx.Message.AccountKeys[i].String())
	}

	for i := 0; i < len(meta.PostBalances) && i < len(meta.PreBalances) && i < len(keys); i++ {
		if meta.PostBalances[i] <= meta.PreBalances[i] {
			continue
		}
		lamports := meta.PostBalances[i] - meta.PreBalances[i]
		p.Credit(keys[i].String(), NativeToken, float64(lamports)/lamportsPerSol)
	}

	pre := make(map[uint16]rpc.TokenBalance, len(meta.PreTokenBalances))
	for _, b := range meta.PreTokenBalances {
		pre[b.AccountIndex] = b
	}
	for _, post := range meta.PostTokenBalances {
		if post.Owner == nil || post.UiTokenAmount == nil {
			continue
		}
		after, err := tokenUnits(post.UiTokenAmount)
		if err != nil {
			return nil, err
		}
		var before float64
		if b, ok := pre[post.AccountIndex]; ok && b.UiTokenAmount != nil {
			if before, err = tokenUnits(b.UiTokenAmount); err != nil {
				return nil, err
			}
		}
		p.Credit(post.Owner.String(), post.Mint.String(), after-before)
	}
	return p, nil
}

func tokenUnits(a *rpc.UiTokenAmount) (float64, error) {
	raw, err := strconv.ParseUint(a.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token amount %q: %w", a.Amount, err)
	}
	return float64(raw) / math.Pow10(int(a.Decimals)), nil
}
