package utils

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string attribute from a DynamoDB item.
func ExtractString(item map[string]types.AttributeValue, key string) string {
	if val, ok := item[key].(*types.AttributeValueMemberS); ok {
		return val.Value
	}
	return ""
}

// ExtractInt safely extracts a numeric attribute from a DynamoDB item.
// Missing or malformed attributes come back as 0.
func ExtractInt(item map[string]types.AttributeValue, key string) int64 {
	if val, ok := item[key].(*types.AttributeValueMemberN); ok {
		n, err := strconv.ParseInt(val.Value, 10, 64)
		if err == nil {
			return n
		}
	}
	return 0
}
