package request

import (
	"errors"
	"regexp"

	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator 表單 DTO 可實作此介面，為「欄位.規則」提供易讀訊息
type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d+\]`)

// GetError 從請求和錯誤中獲取錯誤信息；沒有對應訊息時回傳 nil
func GetError(request any, err error) *cErr.Error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	v, isValidator := request.(Validator)
	if !isValidator {
		return nil
	}
	messages := v.GetMessages()
	for _, fe := range errs {
		field := reg.ReplaceAllString(fieldPath(fe), ".*")
		if message, exist := messages[field+"."+fe.Tag()]; exist {
			return cErr.ValidateErr(message)
		}
	}
	return nil
}

// fieldPath 去掉最外層 struct 名稱，例如 CreateProductRequest.Operations[0].Name → Operations[0].Name
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return ns
}
