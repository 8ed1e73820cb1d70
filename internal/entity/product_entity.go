package entity

type ProductType string

const (
	ProductTypeUpgrade ProductType = "NFT_UPGRADE"
	ProductTypeFeature ProductType = "NFT_FEATURE"
)

// Product is a catalog/pricing configuration document.
type Product struct {
	Id         string
	Collection *string
	Type       ProductType
	Enabled    bool
	Options    []ProductOption
}

type ProductOption struct {
	Key            string
	Name           string
	IsAvailable    bool
	PaymentOptions []PaymentOption
}

type PaymentOption struct {
	Type    string
	Order   int
	Enabled bool
	Amounts []TokenAmount
}

type TokenAmount struct {
	Token  string
	Amount float64
}

const paymentTolerance = 1e-9

// AcceptsPayment reports whether received covers every amount of at least
// one enabled payment option on an available product option.
func (p *Product) AcceptsPayment(received func(token string) float64) bool {
	for _, o := range p.Options {
		if !o.IsAvailable {
			continue
		}
		for _, po := range o.PaymentOptions {
			if po.Enabled && po.coveredBy(received) {
				return true
			}
		}
	}
	return false
}

func (po PaymentOption) coveredBy(received func(token string) float64) bool {
	if len(po.Amounts) == 0 {
		return false
	}
	for _, a := range po.Amounts {
		if received(a.Token)+paymentTolerance < a.Amount {
			return false
		}
	}
	return true
}

func ParseProductType(v string) (ProductType, bool) {
	switch t := ProductType(v); t {
	case ProductTypeUpgrade, ProductTypeFeature:
		return t, true
	}
	return "", false
}
