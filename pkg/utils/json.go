package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa in com indentação de dois espaços
func PrettyJSON(in any) ([]byte, error) {
	return json.MarshalIndent(in, "", "  ")
}
