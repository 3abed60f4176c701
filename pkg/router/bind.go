package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// bindRequest fills req from the url query (GET) or the json body (POST).
// Query binding maps json tags to query parameters and supports the scalar
// kinds used by request models.
func bindRequest(r *http.Request, method string, req any) error {
	if method == http.MethodPost {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, req)
	}

	v := reflect.ValueOf(req).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		queryValue := r.URL.Query().Get(name)
		if queryValue == "" {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(queryValue)

		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(queryValue, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer parameter %s: %w", name, err)
			}
			field.SetInt(n)

		case reflect.Float64:
			f, err := strconv.ParseFloat(queryValue, 64)
			if err != nil {
				return fmt.Errorf("invalid float parameter %s: %w", name, err)
			}
			field.SetFloat(f)

		case reflect.Bool:
			b, err := strconv.ParseBool(queryValue)
			if err != nil {
				return fmt.Errorf("invalid boolean parameter %s: %w", name, err)
			}
			field.SetBool(b)

		default:
			return fmt.Errorf("unsupported query parameter kind %s", field.Kind())
		}
	}

	return nil
}
