package specification

import (
	"rude-dashboard-be/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
)

type ByProductType struct {
	Type entity.ProductType
}

func (s ByProductType) Apply(q *Query) {
	q.Filter = append(q.Filter, bson.E{Key: "type", Value: string(s.Type)})
}

type ByCollection struct {
	Collection string
}

func (s ByCollection) Apply(q *Query) {
	q.Filter = append(q.Filter, bson.E{Key: "collection", Value: s.Collection})
}

type OnlyEnabled struct{}

func (s OnlyEnabled) Apply(q *Query) {
	q.Filter = append(q.Filter, bson.E{Key: "enabled", Value: true})
}

// ProductsByTypeAndCollection narrows by collection only when one is given.
func ProductsByTypeAndCollection(productType entity.ProductType, collection string) []Specification {
	specs := []Specification{ByProductType{Type: productType}}
	if collection != "" {
		specs = append(specs, ByCollection{Collection: collection})
	}
	return specs
}
