package function

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedKind = errors.New("unsupported function kind")

// Kind target language of a generated function stub.
type Kind int

const (
	Unsupported Kind = iota
	Python
	Go
)

func (k Kind) String() string {
	switch k {
	case Python:
		return "python"
	case Go:
		return "go"
	default:
		return "unsupported"
	}
}

// Extension file extension of a stub of this kind.
func (k Kind) Extension() string {
	switch k {
	case Python:
		return ".py"
	case Go:
		return ".go"
	default:
		return ""
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "python", "py":
		return Python, nil
	case "go", "golang":
		return Go, nil
	default:
		return Unsupported, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}
