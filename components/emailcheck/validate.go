package emailcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

// ErrInvalidAddress wraps every rejection from ValidateAddress.
var ErrInvalidAddress = errors.New("emailcheck: invalid address")

// ValidateAddress accepts a bare RFC 5322 address with a dotted domain, as
// parsed by go-mail's recipient handling. Display-name forms are rejected.
func ValidateAddress(_ context.Context, address string) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}

	msg := mail.NewMsg()
	if err := msg.To(trimmed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	parsed := msg.GetAddrHeader(mail.HeaderTo)
	if len(parsed) != 1 || parsed[0].Address != trimmed {
		return fmt.Errorf("%w: %q is not a bare address", ErrInvalidAddress, trimmed)
	}

	at := strings.LastIndex(trimmed, "@")
	domain := trimmed[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("%w: domain %q", ErrInvalidAddress, domain)
	}
	return nil
}
