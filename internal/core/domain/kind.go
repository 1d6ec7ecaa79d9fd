package domain

import "errors"

type messager interface {
	Message() string
}

// HasKind reports whether err carries the sentinel kind anywhere in its chain. A link
// matches by identity, or by carrying the sentinel's own message after metadata was added.
func HasKind(err, kind error) bool {
	if err == nil || kind == nil {
		return false
	}
	if errors.Is(err, kind) {
		return true
	}
	if m, ok := err.(messager); ok && m.Message() == kind.Error() {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if HasKind(e, kind) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return HasKind(u.Unwrap(), kind)
	}
	return false
}
