package dto

type PatoFixResponse struct {
	Msg string `json:"msg"`
}
