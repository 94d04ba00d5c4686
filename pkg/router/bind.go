package router

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// bindQuery fills the string and integer fields of req from query parameters,
// matching by json tag.
func bindQuery(query url.Values, req any) error {
	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		tag := v.Type().Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}

		value := query.Get(name)
		if value == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(value)

		case reflect.Int, reflect.Int64:
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}

			v.Field(i).SetInt(parsed)
		}
	}

	return nil
}
