package order

type ListQuery struct {
	Status string `query:"status"`
	Search string `query:"search"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required"`
}
