package parser

import (
	"fmt"

	"github.com/quarzz/appodeal/pkg/csvascii/models"
)

// parseColumnTypes maps each header token to the kind its column holds.
// An absent header yields zero columns.
func parseColumnTypes(header RawRow) ([]models.Kind, error) {
	kinds := make([]models.Kind, 0, len(header))
	for i := range header {
		token := header.Field(i)
		kind, ok := models.ParseKind(token)
		if !ok {
			return nil, NewMalformedTableError(1, i+1, ReasonUnknownType,
				fmt.Sprintf("unknown column type %q", token))
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
