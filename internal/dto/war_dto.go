package dto

type WarriorPowersRequest struct {
	WarriorList []string `json:"warriorList" validate:"required"`
}

type WarriorPowersResponse struct {
	TotalPower float64 `json:"totalPower"`
}
