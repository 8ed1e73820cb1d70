package dto

type TokenAmountDTO struct {
	Token  string  `json:"token"`
	Amount float64 `json:"amount"`
}

type PaymentOptionDTO struct {
	Type    string           `json:"type"`
	Order   int              `json:"order"`
	Enabled bool             `json:"enabled"`
	Amounts []TokenAmountDTO `json:"amounts"`
}

type ProductOptionDTO struct {
	Key            string             `json:"key"`
	Name           string             `json:"name"`
	IsAvailable    bool               `json:"isAvailable"`
	PaymentOptions []PaymentOptionDTO `json:"paymentOptions"`
}

type ProductResponse struct {
	Id         string             `json:"id"`
	Collection *string            `json:"collection,omitempty"`
	Type       string             `json:"type"`
	Enabled    bool               `json:"enabled"`
	Options    []ProductOptionDTO `json:"options"`
}
