package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// devotionalSchema constrains the daily reflection response
var devotionalSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":   {Type: genai.TypeString},
		"verse":   {Type: genai.TypeString},
		"content": {Type: genai.TypeString},
		"prayer":  {Type: genai.TypeString},
	},
	Required: []string{"title", "verse", "content", "prayer"},
}

// referencesSchema constrains the search reference list
var referencesSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

// decodeStructured validates raw against schema and only then unmarshals it
// into out. Partial objects are never accepted.
func decodeStructured(raw string, schema *genai.Schema, out any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &SchemaError{Reason: "empty response"}
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return &SchemaError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if err := validateSchema("$", doc, schema); err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &SchemaError{Reason: fmt.Sprintf("decode: %v", err)}
	}

	return nil
}

func validateSchema(path string, v any, schema *genai.Schema) error {
	if schema == nil {
		return nil
	}

	switch schema.Type {
	case genai.TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return &SchemaError{Path: path, Reason: "expected object"}
		}
		for _, name := range schema.Required {
			if _, ok := obj[name]; !ok {
				return &SchemaError{Path: path + "." + name, Reason: "missing required field"}
			}
		}
		for name, prop := range schema.Properties {
			fv, ok := obj[name]
			if !ok {
				continue
			}
			if err := validateSchema(path+"."+name, fv, prop); err != nil {
				return err
			}
		}

	case genai.TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return &SchemaError{Path: path, Reason: "expected array"}
		}
		for i, item := range arr {
			if err := validateSchema(fmt.Sprintf("%s[%d]", path, i), item, schema.Items); err != nil {
				return err
			}
		}

	case genai.TypeString:
		if _, ok := v.(string); !ok {
			return &SchemaError{Path: path, Reason: "expected string"}
		}

	case genai.TypeNumber, genai.TypeInteger:
		if _, ok := v.(float64); !ok {
			return &SchemaError{Path: path, Reason: "expected number"}
		}

	case genai.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return &SchemaError{Path: path, Reason: "expected boolean"}
		}
	}

	return nil
}
