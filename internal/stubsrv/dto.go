package stubsrv

import "github.com/rmello/shopfront/internal/models"

type productsEnvelope struct {
	Status string           `json:"status"`
	Data   []models.Product `json:"data"`
}

type pageResponse struct {
	Content       []models.Product `json:"content"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	TotalElements int              `json:"totalElements"`
}

type errorResponse struct {
	Message string `json:"message"`
}
