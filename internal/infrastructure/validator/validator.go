// Package validator decides whether an address is worth sending to: RFC-ish
// format, no obvious provider typo, not a throwaway mailbox, a domain that
// accepts mail and, optionally, an SMTP server that admits the mailbox.
package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/badoux/checkmail"
	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

var ErrLookupMX = errors.New("mx lookup failed")

type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// DomainCache remembers whether a domain accepts mail.
type DomainCache interface {
	Get(ctx context.Context, domain string) (accepts bool, found bool, err error)
	Set(ctx context.Context, domain string, accepts bool) error
}

type Options struct {
	CheckMX   bool
	ProbeSMTP bool
	Resolver  MXResolver
	Cache     DomainCache
}

type Validator struct {
	checkMX   bool
	probeSMTP bool
	resolver  MXResolver
	cache     DomainCache
	probe     func(email string) error
}

func New(opts Options) *Validator {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &Validator{
		checkMX:   opts.CheckMX,
		probeSMTP: opts.ProbeSMTP,
		resolver:  resolver,
		cache:     opts.Cache,
		probe:     checkmail.ValidateHost,
	}
}

// Validate returns an invalid verdict for any address that fails a check. An
// error is returned only when a check could not be carried out.
func (v *Validator) Validate(ctx context.Context, address domain.EmailAddress) (domain.Verdict, error) {
	if err := checkmail.ValidateFormat(address.String()); err != nil {
		return domain.InvalidVerdict("invalid format"), nil
	}

	host := address.Domain()
	if suggestion, ok := commonTypos[host]; ok {
		return domain.InvalidVerdict(fmt.Sprintf("possible typo, did you mean %s", suggestion)), nil
	}
	if isDisposable(host) {
		return domain.InvalidVerdict("disposable domain"), nil
	}

	if v.checkMX {
		accepts, err := v.acceptsMail(ctx, host)
		if err != nil {
			return domain.Verdict{}, err
		}
		if !accepts {
			return domain.InvalidVerdict("domain has no mail exchanger"), nil
		}
	}

	if v.probeSMTP {
		if err := v.probe(address.String()); err != nil {
			return domain.InvalidVerdict(fmt.Sprintf("smtp probe: %v", err)), nil
		}
	}

	return domain.ValidVerdict(), nil
}

func (v *Validator) acceptsMail(ctx context.Context, host string) (bool, error) {
	if v.cache != nil {
		accepts, found, err := v.cache.Get(ctx, host)
		if err != nil {
			slog.Warn("domain cache read failed", "domain", host, "error", err)
		} else if found {
			return accepts, nil
		}
	}

	accepts, err := v.lookupMX(ctx, host)
	if err != nil {
		return false, err
	}

	if v.cache != nil {
		if err := v.cache.Set(ctx, host, accepts); err != nil {
			slog.Warn("domain cache write failed", "domain", host, "error", err)
		}
	}
	return accepts, nil
}

// lookupMX treats NXDOMAIN, an empty answer and a null MX ("." per RFC 7505)
// as a domain that does not accept mail.
func (v *Validator) lookupMX(ctx context.Context, host string) (bool, error) {
	records, err := v.resolver.LookupMX(ctx, host)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrLookupMX, err)
	}

	for _, record := range records {
		if record.Host != "." && record.Host != "" {
			return true, nil
		}
	}
	return false, nil
}
