package dto

import "time"

type TransactionResponse struct {
	TxId      string    `json:"txId"`
	Wallet    string    `json:"wallet"`
	Mint      *string   `json:"mint,omitempty"`
	Service   string    `json:"service"`
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

// ConfirmTransactionMessage is queued for the confirmation worker.
type ConfirmTransactionMessage struct {
	TxId       string `json:"tx_id"`
	Wallet     string `json:"wallet"`
	Mint       string `json:"mint"`
	Service    string `json:"service"`
	Collection string `json:"collection,omitempty"`
}
