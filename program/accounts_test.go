package program

import (
	"errors"
	"testing"
)

func TestInitializeRequiresNoAccounts(t *testing.T) {
	desc := Initialize{}
	if desc.Name() != "Initialize" {
		t.Fatalf("Name() = %q", desc.Name())
	}
	if n := len(desc.Required()); n != 0 {
		t.Fatalf("Required() has %d entries, want 0", n)
	}
	if err := Validate(desc, nil); err != nil {
		t.Fatalf("Validate(no accounts) = %v", err)
	}
}

func TestValidateTooMany(t *testing.T) {
	err := Validate(Initialize{}, []AccountMeta{{Key: ProgramID}})
	if !errors.Is(err, ErrTooManyAccounts) || !errors.Is(err, ErrAccounts) {
		t.Fatalf("err = %v, want ErrTooManyAccounts", err)
	}

	var accErr *AccountsError
	if !errors.As(err, &accErr) {
		t.Fatalf("err %T is not *AccountsError", err)
	}
	if accErr.Descriptor != "Initialize" || accErr.Expected != 0 || accErr.Supplied != 1 {
		t.Fatalf("unexpected error fields %+v", accErr)
	}
}

type twoAccounts struct{}

func (twoAccounts) Name() string { return "Pair" }

func (twoAccounts) Required() []AccountRequirement {
	return []AccountRequirement{{Name: "a"}, {Name: "b"}}
}

func TestValidateNotEnough(t *testing.T) {
	err := Validate(twoAccounts{}, []AccountMeta{{Key: ProgramID}})
	if !errors.Is(err, ErrNotEnoughAccounts) {
		t.Fatalf("err = %v, want ErrNotEnoughAccounts", err)
	}
	if err := Validate(twoAccounts{}, []AccountMeta{{}, {}}); err != nil {
		t.Fatalf("exact count rejected: %v", err)
	}
}

func TestDecodeAccounts(t *testing.T) {
	accounts, err := DecodeAccounts(Initialize{}, []string{deployedID})
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 1 || accounts[0].Key != ProgramID {
		t.Fatalf("unexpected accounts %+v", accounts)
	}

	_, err = DecodeAccounts(Initialize{}, []string{deployedID, "not-a-key"})
	if !errors.Is(err, ErrInvalidAccountKey) {
		t.Fatalf("err = %v, want ErrInvalidAccountKey", err)
	}
}

func TestDescriptorsLookup(t *testing.T) {
	d := Descriptors{"Initialize": Initialize{}}
	for _, name := range []string{"Initialize", "presale_contract:Initialize"} {
		if _, ok := d.Lookup(name); !ok {
			t.Errorf("Lookup(%q) missed", name)
		}
	}
	if _, ok := d.Lookup("Purchase"); ok {
		t.Error("Lookup(Purchase) should miss")
	}
}
