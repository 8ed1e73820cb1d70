package specification

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Specification contributes a piece of a Mongo query.
type Specification interface {
	Apply(q *Query)
}

// Query accumulates filter and find options from specifications.
type Query struct {
	Filter bson.D
	Sort   bson.D
	Limit  int64
	Skip   int64
}

func Build(specs ...Specification) *Query {
	q := &Query{Filter: bson.D{}}
	for _, spec := range specs {
		spec.Apply(q)
	}
	return q
}

func (q *Query) FindOptions() *options.FindOptions {
	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	return opts
}

func (q *Query) FindOneOptions() *options.FindOneOptions {
	opts := options.FindOne()
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	return opts
}
