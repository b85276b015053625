package program

import (
	"errors"
	"fmt"
)

var (
	// ErrAccounts is the root of every account validation failure.
	ErrAccounts = errors.New("account validation failed")

	ErrNotEnoughAccounts = fmt.Errorf("%w: not enough accounts", ErrAccounts)
	ErrTooManyAccounts   = fmt.Errorf("%w: too many accounts", ErrAccounts)
	ErrInvalidAccountKey = fmt.Errorf("%w: invalid account key", ErrAccounts)
)

// AccountMeta is an account passed along with a call.
type AccountMeta struct {
	Key ID `json:"key"`
}

// AccountRequirement names one account slot a transaction expects.
type AccountRequirement struct {
	Name string
}

// Accounts describes the accounts a transaction requires from its caller.
type Accounts interface {
	Name() string
	Required() []AccountRequirement
}

// Initialize is the account descriptor of the Initialize transaction. It
// requires no accounts.
type Initialize struct{}

func (Initialize) Name() string { return "Initialize" }

func (Initialize) Required() []AccountRequirement { return nil }

// AccountsError reports a call whose accounts do not match its descriptor.
type AccountsError struct {
	Descriptor string
	Expected   int
	Supplied   int
	Err        error
}

func (e *AccountsError) Error() string {
	return fmt.Sprintf("%v for %s: expected %d, supplied %d", e.Err, e.Descriptor, e.Expected, e.Supplied)
}

func (e *AccountsError) Unwrap() error { return e.Err }

// Validate checks the supplied accounts against desc.
func Validate(desc Accounts, supplied []AccountMeta) error {
	expected := len(desc.Required())
	switch {
	case len(supplied) < expected:
		return &AccountsError{Descriptor: desc.Name(), Expected: expected, Supplied: len(supplied), Err: ErrNotEnoughAccounts}
	case len(supplied) > expected:
		return &AccountsError{Descriptor: desc.Name(), Expected: expected, Supplied: len(supplied), Err: ErrTooManyAccounts}
	}
	return nil
}

// DecodeAccounts parses call arguments as base58 account keys.
func DecodeAccounts(desc Accounts, args []string) ([]AccountMeta, error) {
	accounts := make([]AccountMeta, 0, len(args))
	for i, arg := range args {
		key, err := ParseID(arg)
		if err != nil {
			return nil, &AccountsError{
				Descriptor: desc.Name(),
				Expected:   len(desc.Required()),
				Supplied:   len(args),
				Err:        fmt.Errorf("%w at position %d: %v", ErrInvalidAccountKey, i, err),
			}
		}
		accounts = append(accounts, AccountMeta{Key: key})
	}
	return accounts, nil
}

// Descriptors maps transaction names to their account descriptors.
type Descriptors map[string]Accounts

// Lookup returns the descriptor for a transaction name. A namespaced name
// such as "presale_contract:Initialize" resolves to its bare function.
func (d Descriptors) Lookup(name string) (Accounts, bool) {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == ':' {
			name = name[i+1:]
			break
		}
	}
	desc, ok := d[name]
	return desc, ok
}
