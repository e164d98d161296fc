package launchopts

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var errServiceIDFormat = errors.New("invalid service identifier format")

// ParseServiceID parses a service identifier. Surrounding whitespace is
// ignored. Accepted forms are 32 hex digits, the dashed form, the dashed form
// wrapped in {} or (), and the urn:uuid: form.
func ParseServiceID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if len(s) == 38 {
		open, closing := s[0], s[len(s)-1]
		if !(open == '{' && closing == '}') && !(open == '(' && closing == ')') {
			return uuid.Nil, errServiceIDFormat
		}
		s = s[1 : len(s)-1]
	}
	return uuid.Parse(s)
}
