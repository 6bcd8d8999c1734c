package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	val "github.com/go-playground/validator/v10"
)

// ValidError 单个字段校验失败信息
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// ErrorsToString 聚合全部错误信息为一个字符串
func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), "; ")
}

// MapsToString key=>message 形式返回，便于前端按字段展示
func (v ValidErrors) MapsToString() map[string]string {
	m := map[string]string{}
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// BindAndValid binds the request payload into v and collects validation
// failures per field.
// BindAndValid 绑定请求参数并收集字段级校验错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}
		for _, verr := range verrs {
			errs = append(errs, &ValidError{
				Key:     verr.Field(),
				Message: verr.Field() + " failed on the '" + verr.Tag() + "' rule",
			})
		}
		return false, errs
	}
	return true, nil
}
