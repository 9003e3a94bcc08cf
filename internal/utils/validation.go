package utils

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Document limits for JSON arriving through tool parameters.
const (
	MaxDocumentSize  = 64 * 1024 // 64KB per document
	MaxDocumentDepth = 8
)

// ValidateDocument checks a JSON document against size, syntax and nesting
// limits before it is decoded into domain types.
func ValidateDocument(doc string) error {
	if len(doc) > MaxDocumentSize {
		return fmt.Errorf("document size %d bytes exceeds maximum %d bytes", len(doc), MaxDocumentSize)
	}

	var parsed interface{}
	if err := sonic.UnmarshalString(doc, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return checkDepth(parsed, 0, MaxDocumentDepth)
}

func checkDepth(data interface{}, depth, maxDepth int) error {
	if depth > maxDepth {
		return fmt.Errorf("JSON nesting depth %d exceeds maximum %d", depth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, depth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, depth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}
