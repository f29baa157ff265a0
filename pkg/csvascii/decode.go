package csvascii

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText converts CSV bytes to UTF-8. A byte order mark selects UTF-8 or
// UTF-16 and is stripped; otherwise the named encoding (default UTF-8) applies.
func decodeText(data []byte, name string) ([]byte, error) {
	var enc encoding.Encoding = unicode.UTF8
	if name != "" {
		e, err := htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
		}
		enc = e
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return out, nil
}
