package specification

import (
	"rude-dashboard-be/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
)

type ByTxId struct {
	TxId string
}

func (s ByTxId) Apply(q *Query) {
	q.Filter = append(q.Filter, bson.E{Key: "txId", Value: s.TxId})
}

type ByState struct {
	State entity.TransactionState
}

func (s ByState) Apply(q *Query) {
	q.Filter = append(q.Filter, bson.E{Key: "state", Value: string(s.State)})
}

type ByService struct {
	Service entity.TransactionService
}

func (s ByService) Apply(q *Query) {
	q.Filter = append(q.Filter, bson.E{Key: "service", Value: string(s.Service)})
}

// NewestFirst orders transaction logs by timestamp descending.
type NewestFirst struct{}

func (s NewestFirst) Apply(q *Query) {
	OrderBy{Field: "timestamp", Desc: true}.Apply(q)
}
