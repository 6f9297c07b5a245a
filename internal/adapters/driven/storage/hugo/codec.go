package hugo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// Document layout markers. The frontmatter is a single JSON line between
// two delimiter lines; the body sits inside the unsafe shortcode so Hugo
// renders the stored HTML verbatim.
const (
	frontmatterDelim = "---"
	contentOpen      = "{{< unsafe >}}"
	contentClose     = "{{< /unsafe >}}"
)

// Encode renders an observation into the on-disk document shape.
func Encode(obs *domain.Observation) ([]byte, error) {
	frontmatter, err := json.Marshal(obs.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString(frontmatterDelim)
	b.WriteByte('\n')
	b.Write(frontmatter)
	b.WriteByte('\n')
	b.WriteString(frontmatterDelim)
	b.WriteByte('\n')
	b.WriteString(contentOpen)
	b.WriteByte('\n')
	b.WriteString(obs.Content)
	b.WriteByte('\n')
	b.WriteString(contentClose)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// Decode parses a stored document back into decoded frontmatter and the
// content body with the wrapper markers stripped.
func Decode(data []byte) (map[string]any, string, error) {
	s := string(data)

	first := strings.Index(s, frontmatterDelim)
	if first < 0 {
		return nil, "", fmt.Errorf("%w: no frontmatter delimiter", domain.ErrMalformedDocument)
	}
	rest := s[first+len(frontmatterDelim):]
	second := strings.Index(rest, frontmatterDelim)
	if second < 0 {
		return nil, "", fmt.Errorf("%w: unterminated frontmatter", domain.ErrMalformedDocument)
	}

	var frontmatter map[string]any
	if err := json.Unmarshal([]byte(rest[:second]), &frontmatter); err != nil {
		return nil, "", fmt.Errorf("%w: frontmatter: %w", domain.ErrMalformedDocument, err)
	}
	if frontmatter == nil {
		return nil, "", fmt.Errorf("%w: frontmatter is null", domain.ErrMalformedDocument)
	}

	body := rest[second+len(frontmatterDelim):]
	open := strings.Index(body, contentOpen)
	closing := strings.LastIndex(body, contentClose)
	if open < 0 || closing < 0 || closing < open {
		return nil, "", fmt.Errorf("%w: content markers", domain.ErrMalformedDocument)
	}

	content := body[open+len(contentOpen) : closing]
	content = strings.TrimPrefix(content, "\n")
	content = strings.TrimSuffix(content, "\n")
	return frontmatter, content, nil
}
