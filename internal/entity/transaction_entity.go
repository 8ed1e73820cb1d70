package entity

import "time"

type TransactionState string

const (
	TransactionStatePending TransactionState = "PENDING"
	TransactionStateSuccess TransactionState = "SUCCESS"
	TransactionStateFailed  TransactionState = "FAILED"
)

type TransactionService string

const (
	TransactionServiceFeature TransactionService = "NFT_FEATURE"
	TransactionServiceUpgrade TransactionService = "NFT_UPGRADE"
	TransactionServiceFix     TransactionService = "NFT_FIX"
)

// RudeTransaction is one entry of the on-chain action audit log.
type RudeTransaction struct {
	TxId      string
	Wallet    string
	Mint      *string
	Service   TransactionService
	State     TransactionState
	Timestamp time.Time
}

func (s TransactionState) IsTerminal() bool {
	return s == TransactionStateSuccess || s == TransactionStateFailed
}

// CanTransition reports whether the log may move from s to next.
// Only PENDING -> SUCCESS|FAILED is allowed.
func (s TransactionState) CanTransition(next TransactionState) bool {
	return s == TransactionStatePending && next.IsTerminal()
}
