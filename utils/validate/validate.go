package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ValidationErrorResponse 輸出格式化的 validator error（欄位 json 名/規則）
func ValidationErrorResponse(obj any, err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		var b strings.Builder
		b.WriteString("Validation error:")
		for _, fe := range errs {
			field := jsonFieldName(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" field %q failed the '%s' rule", field, fe.Tag()))
			if fe.Param() != "" {
				b.WriteString("=" + fe.Param())
			}
			b.WriteString(";")
		}
		return b.String()
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func jsonFieldName(obj any, structField string) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return structField
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
		if tag = f.Tag.Get("form"); tag != "" {
			return strings.Split(tag, ",")[0]
		}
	}
	return structField
}

// ParseID 路徑參數必須是 UUID
func ParseID(c *gin.Context, key string) (id string, cause error, responseErr error) {
	raw := c.Param(key)
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return parsed.String(), nil, nil
}

// ParseDate 路徑或查詢的 YYYY-MM-DD
func ParseDate(raw, key string) (cause error, responseErr error) {
	if _, err := time.Parse(core.DateLayout, raw); err != nil {
		return err, cErr.ValidatePathParamsErr("invalid " + key + ", expected YYYY-MM-DD")
	}
	return nil, nil
}

func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		if friendly := request.GetError(req, err); friendly != nil {
			return err, friendly
		}
		return err, cErr.ValidateErr(ValidationErrorResponse(req, err))
	}
	return nil, nil
}

func BindQuery(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindQuery(req); err != nil {
		return err, cErr.ValidatePathParamsErr(ValidationErrorResponse(req, err))
	}
	return nil, nil
}

func GetInt64Query(c *gin.Context, key string, defaultVal int64) (int64, error) {
	if v := c.Query(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	}
	return defaultVal, nil
}

// GetBoolQuery 未帶參數時回傳 nil
func GetBoolQuery(c *gin.Context, key string) (*bool, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func IsValidRole(role string) bool {
	return core.Role(role).Valid()
}
