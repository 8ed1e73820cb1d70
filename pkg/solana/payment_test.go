package solana

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentTx(keys ...solanago.PublicKey) *solanago.Transaction {
	return &solanago.Transaction{
		Message: solanago.Message{
			Header:      solanago.MessageHeader{NumRequiredSignatures: 1},
			AccountKeys: keys,
		},
	}
}

func TestSummarizePaymentNativeTransfer(t *testing.T) {
	payer := solanago.NewWallet().PublicKey()
	treasury := solanago.NewWallet().PublicKey()

	p, err := summarizePayment(paymentTx(payer, treasury, solanago.SystemProgramID), &rpc.TransactionMeta{
		PreBalances:  []uint64{2_000_000_000, 1_000_000_000, 1},
		PostBalances: []uint64{1_499_995_000, 1_500_000_000, 1},
	})
	require.NoError(t, err)

	assert.True(t, p.SignedBy(payer.String()))
	assert.False(t, p.SignedBy(treasury.String()))
	assert.InDelta(t, 0.5, p.Received(treasury.String(), "sol"), 1e-9)
	assert.Zero(t, p.Received(payer.String(), NativeToken))
}

func TestSummarizePaymentTokenTransfer(t *testing.T) {
	payer := solanago.NewWallet().PublicKey()
	treasury := solanago.NewWallet().PublicKey()
	payerAta := solanago.NewWallet().PublicKey()
	treasuryAta := solanago.NewWallet().PublicKey()
	mint := solanago.NewWallet().PublicKey()

	meta := &rpc.TransactionMeta{
		PreBalances:  []uint64{10, 10, 10},
		PostBalances: []uint64{5, 10, 10},
		PreTokenBalances: []rpc.TokenBalance{
			{AccountIndex: 1, Owner: &payer, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: "5000000", Decimals: 6}},
			{AccountIndex: 2, Owner: &treasury, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: "0", Decimals: 6}},
		},
		PostTokenBalances: []rpc.TokenBalance{
			{AccountIndex: 1, Owner: &payer, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: "2500000", Decimals: 6}},
			{AccountIndex: 2, Owner: &treasury, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: "2500000", Decimals: 6}},
		},
	}

	p, err := summarizePayment(paymentTx(payer, payerAta, treasuryAta), meta)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, p.Received(treasury.String(), mint.String()), 1e-9)
	assert.Zero(t, p.Received(payer.String(), mint.String()))
}

func TestSummarizePaymentRejectsFailedTransaction(t *testing.T) {
	payer := solanago.NewWallet().PublicKey()
	_, err := summarizePayment(paymentTx(payer), &rpc.TransactionMeta{
		Err: map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}},
	})
	assert.Error(t, err)
}
