package mmtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a sectioned key/value document.
//
// Example:
//
//	[boot]
//	name = boot
//	start = 0
//	; comment
//	size: 9
//
// Blank lines and lines starting with '#' or ';' are ignored. Keys are
// lower-cased and values are trimmed. Errors carry the 1-based line number.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	var current *Section
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), CR)
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, CommentHash) || strings.HasPrefix(trim, CommentSemicolon) {
			continue
		}
		if strings.HasPrefix(trim, SectionOpen) {
			if !strings.HasSuffix(trim, SectionClose) {
				return nil, lineError(lineNo, ErrMalformedSection, trim)
			}
			name := strings.TrimSpace(trim[len(SectionOpen) : len(trim)-len(SectionClose)])
			if name == "" {
				return nil, lineError(lineNo, ErrMalformedSection, trim)
			}
			s, err := doc.AddSection(name)
			if err != nil {
				return nil, lineError(lineNo, err, name)
			}
			current = s
			continue
		}
		if current == nil {
			return nil, lineError(lineNo, ErrEntryOutsideSection, trim)
		}
		key, value, ok := splitEntry(trim)
		if !ok {
			return nil, lineError(lineNo, ErrMalformedEntry, trim)
		}
		if _, dup := current.Get(key); dup {
			return nil, lineError(lineNo, ErrDuplicateKey, key)
		}
		current.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// splitEntry splits at the first '=' or ':', whichever comes first.
func splitEntry(line string) (key, value string, ok bool) {
	idx := strings.IndexAny(line, Assign+AltAssign)
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

func lineError(lineNo int, err error, text string) error {
	return fmt.Errorf("line %d: %w: %q", lineNo, err, text)
}

// ParseBool accepts the boolean spellings 1/yes/true/on and 0/no/false/off,
// case-insensitively.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidBool, value)
}
