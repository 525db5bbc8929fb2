package mailing_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

// fakeValidator accepts anything containing '@' unless listed in invalid or errs.
type fakeValidator struct {
	invalid map[domain.EmailAddress]bool
	errs    map[domain.EmailAddress]error
	delay   time.Duration

	inFlight    atomic.Int64
	maxInFlight atomic.Int64
	calls       atomic.Int64
}

func (f *fakeValidator) Validate(ctx context.Context, address domain.EmailAddress) (domain.Verdict, error) {
	f.calls.Add(1)
	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxInFlight.Load()
		if current <= seen || f.maxInFlight.CompareAndSwap(seen, current) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	if err, ok := f.errs[address]; ok {
		return domain.Verdict{}, err
	}
	if f.invalid[address] || !strings.Contains(address.String(), "@") {
		return domain.InvalidVerdict("rejected"), nil
	}
	return domain.ValidVerdict(), nil
}

type fakeTransport struct {
	mu      sync.Mutex
	sent    []domain.Message
	failFor map[domain.EmailAddress]bool
}

func (f *fakeTransport) Send(ctx context.Context, msg domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[msg.To] {
		return errors.New("mailbox unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeTransport) Name() string { return "fake" }

func (f *fakeTransport) recipients() []domain.EmailAddress {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.EmailAddress, 0, len(f.sent))
	for _, msg := range f.sent {
		out = append(out, msg.To)
	}
	return out
}

type fakeStats struct {
	mu         sync.Mutex
	count      int64
	increments []int64
	err        error
}

func (f *fakeStats) Increment(ctx context.Context, by int64) (domain.EmailStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.EmailStats{}, f.err
	}
	f.count += by
	f.increments = append(f.increments, by)
	return domain.EmailStats{SuccessCount: f.count}, nil
}

func (f *fakeStats) Get(ctx context.Context) (domain.EmailStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.EmailStats{}, f.err
	}
	return domain.EmailStats{SuccessCount: f.count}, nil
}

type fakeSheets struct {
	values   []string
	err      error
	column   string
	filename string
}

func (f *fakeSheets) ReadColumn(ctx context.Context, filename string, r io.Reader, column string) ([]string, error) {
	f.filename = filename
	f.column = column
	if f.err != nil {
		return nil, f.err
	}
	return f.values, nil
}

type fakePasswordRepo struct {
	record    *domain.PasswordRecord
	createErr error
	getErr    error
}

func (f *fakePasswordRepo) Create(ctx context.Context, record domain.PasswordRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.record != nil {
		return domain.ErrPasswordAlreadySet
	}
	f.record = &record
	return nil
}

func (f *fakePasswordRepo) Get(ctx context.Context) (domain.PasswordRecord, error) {
	if f.getErr != nil {
		return domain.PasswordRecord{}, f.getErr
	}
	if f.record == nil {
		return domain.PasswordRecord{}, domain.ErrPasswordNotSet
	}
	return *f.record, nil
}

// fakeHasher "hashes" by prefixing, which is enough to tell stored from plaintext.
type fakeHasher struct {
	hashErr    error
	compareErr error
}

func (f *fakeHasher) Hash(plaintext string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + plaintext, nil
}

func (f *fakeHasher) Compare(hashed, plaintext string) (bool, error) {
	if f.compareErr != nil {
		return false, f.compareErr
	}
	return hashed == "hashed:"+plaintext, nil
}
