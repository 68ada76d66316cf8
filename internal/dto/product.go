package dto

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/pkg/request"
)

// 產品工序
type OperationDto struct {
	Name           string  `json:"name" binding:"required,min=1"`
	OperationID    string  `json:"operationId" binding:"required,min=1"`
	AmountPerPiece float64 `json:"amountPerPiece" binding:"gte=0"`
}

func (OperationDto) GetMessages() request.ValidatorMessages {
	return operationMessages("")
}

type CreateProductDto struct {
	Name         string         `json:"name" binding:"required,min=3"`
	ProductID    string         `json:"productId" binding:"required,min=3"`
	DesignNo     string         `json:"designNo" binding:"required,min=3"`
	Color        string         `json:"color" binding:"required,min=1"`
	MaterialCost float64        `json:"materialCost" binding:"gte=0"`
	ThreadCost   float64        `json:"threadCost" binding:"gte=0"`
	OtherCosts   float64        `json:"otherCosts" binding:"gte=0"`
	Operations   []OperationDto `json:"operations" binding:"required,min=1,dive"`
}

func (CreateProductDto) GetMessages() request.ValidatorMessages {
	messages := productMessages()
	messages["Operations.required"] = "at least one operation is required"
	messages["Operations.min"] = "at least one operation is required"
	return messages
}

// 更新產品；operations 有帶（非空）時整批取代
type UpdateProductDto struct {
	Name         *string        `json:"name,omitempty" binding:"omitempty,min=3"`
	ProductID    *string        `json:"productId,omitempty" binding:"omitempty,min=3"`
	DesignNo     *string        `json:"designNo,omitempty" binding:"omitempty,min=3"`
	Color        *string        `json:"color,omitempty" binding:"omitempty,min=1"`
	MaterialCost *float64       `json:"materialCost,omitempty" binding:"omitempty,gte=0"`
	ThreadCost   *float64       `json:"threadCost,omitempty" binding:"omitempty,gte=0"`
	OtherCosts   *float64       `json:"otherCosts,omitempty" binding:"omitempty,gte=0"`
	Operations   []OperationDto `json:"operations,omitempty" binding:"omitempty,dive"`
}

func (UpdateProductDto) GetMessages() request.ValidatorMessages {
	return productMessages()
}

type ProductResponseDto struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	ProductID       string             `json:"productId"`
	DesignNo        string             `json:"designNo"`
	Color           string             `json:"color"`
	PatternImageURL string             `json:"patternImageUrl,omitempty"`
	MaterialCost    float64            `json:"materialCost"`
	ThreadCost      float64            `json:"threadCost"`
	OtherCosts      float64            `json:"otherCosts"`
	Operations      []*model.Operation `json:"operations"`
	CreatedBy       string             `json:"createdBy"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func productMessages() request.ValidatorMessages {
	messages := request.ValidatorMessages{
		"Name.required":      "product name is required",
		"Name.min":           "product name must be at least 3 characters",
		"ProductID.required": "product ID is required",
		"ProductID.min":      "product ID must be at least 3 characters",
		"DesignNo.required":  "design number is required",
		"DesignNo.min":       "design number must be at least 3 characters",
		"Color.required":     "color is required",
		"Color.min":          "color is required",
		"MaterialCost.gte":   "material cost must be 0 or more",
		"ThreadCost.gte":     "thread cost must be 0 or more",
		"OtherCosts.gte":     "other costs must be 0 or more",
	}
	for k, v := range operationMessages("Operations.*.") {
		messages[k] = v
	}
	return messages
}

func operationMessages(prefix string) request.ValidatorMessages {
	return request.ValidatorMessages{
		prefix + "Name.required":        "operation name is required",
		prefix + "Name.min":             "operation name is required",
		prefix + "OperationID.required": "operation ID is required",
		prefix + "OperationID.min":      "operation ID is required",
		prefix + "AmountPerPiece.gte":   "amount per piece must be 0 or more",
	}
}
