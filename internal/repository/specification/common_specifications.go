package specification

import "go.mongodb.org/mongo-driver/bson"

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(q *Query) {
	direction := 1
	if s.Desc {
		direction = -1
	}
	q.Sort = append(q.Sort, bson.E{Key: s.Field, Value: direction})
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(q *Query) {
	q.Limit = int64(s.Limit)
	q.Skip = int64(s.Offset)
}

type ByWallet struct {
	Wallet string
}

func (s ByWallet) Apply(q *Query) {
	q.Filter = append(q.Filter, bson.E{Key: "wallet", Value: s.Wallet})
}

type ByMint struct {
	Mint string
}

func (s ByMint) Apply(q *Query) {
	q.Filter = append(q.Filter, bson.E{Key: "mint", Value: s.Mint})
}
