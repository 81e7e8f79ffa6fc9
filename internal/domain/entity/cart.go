package entity

type Cart struct {
	TotalItems int `json:"totalItems"`
}
