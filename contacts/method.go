package contacts

import (
	"errors"
	"fmt"
	"strings"
)

// Kind of communication channel a contact can be reached on.
type Method int

const (
	Email Method = iota
	Mobile
	Github
	Instagram
	Linkedin
	Website
	Snapchat
)

var AllMethods = []Method{Email, Mobile, Github, Instagram, Linkedin, Website, Snapchat}

var methodNames = map[Method]string{
	Email:     "EMAIL",
	Mobile:    "MOBILE",
	Github:    "GITHUB",
	Instagram: "INSTAGRAM",
	Linkedin:  "LINKEDIN",
	Website:   "WEBSITE",
	Snapchat:  "SNAPCHAT",
}

var ErrUnknownMethod = errors.New("communication method not recognized")

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Communication identifiers for a single contact, such as Email -> "me@example.com".
type Methods map[Method]string

// Renders as "{EMAIL=me@example.com, MOBILE=555-0100}", in method order.
func (ms Methods) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for _, m := range AllMethods {
		id, ok := ms[m]
		if !ok {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(m.String())
		sb.WriteString("=")
		sb.WriteString(id)
	}
	sb.WriteString("}")
	return sb.String()
}

// Resolves a label like "email", "e", or "Website" to a Method, by first letter.
func MethodForLabel(label string) (Method, error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return 0, fmt.Errorf("%w: empty label", ErrUnknownMethod)
	}
	r := []rune(label)[0]
	for _, m := range AllMethods {
		if []rune(m.String())[0] == r {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, label)
}

// Parses comma separated "label: id" pairs. Pieces which do not split into exactly one label and one id are skipped; a later pair for the same method replaces an earlier one.
func ParseMethods(s string) (Methods, error) {
	out := Methods{}
	for _, piece := range strings.Split(s, ",") {
		parts := trimTrailingEmpty(strings.Split(piece, ":"))
		if len(parts) != 2 {
			continue
		}
		m, err := MethodForLabel(parts[0])
		if err != nil {
			return nil, err
		}
		out[m] = strings.TrimSpace(parts[1])
	}
	return out, nil
}

// "email:" has no id, and is skipped instead of recorded as empty
func trimTrailingEmpty(parts []string) []string {
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
