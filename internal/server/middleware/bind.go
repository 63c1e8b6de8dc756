package middleware

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/cstockton/go-conv"
	"github.com/labstack/echo/v4"
)

// BindAndValidate binds path params, query, body and headers into req, then validates it.
// Headers are bound by tag `header:"<name>"`. Validation failures answer 400.
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	if err := bindHeader(c.Request().Header, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

// bindHeader decodes http headers into dst by tag `header:"<header_name>"`.
// dst must be a pointer to a struct.
func bindHeader(header http.Header, dst any) error {
	return bindStruct(dst, "header", func(tagValue string) (any, error) {
		return header.Get(tagValue), nil
	})
}

func bindStruct(dst any, tagName string, getValueFn func(tagValue string) (any, error)) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Ptr {
		return fmt.Errorf("non-pointer passed to bind")
	}

	indirect := reflect.Indirect(ptr)
	if indirect.Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a struct, got %s", indirect.Kind())
	}
	structType := indirect.Type()

	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
			if err := bindStruct(indirect.Field(i).Addr().Interface(), tagName, getValueFn); err != nil {
				return err
			}
			continue
		}
		tagValue := structField.Tag.Get(tagName)
		if tagValue == "-" || tagValue == "" {
			continue
		}

		value, err := getValueFn(tagValue)
		if err != nil {
			return err
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		field := indirect.Field(i)
		if err := conv.Infer(field, value); err != nil {
			return fmt.Errorf("cannot parse %s.%s as %s from: %#v / %s",
				structType.Name(), structField.Name, field.Type(), value, err)
		}
	}

	return nil
}
