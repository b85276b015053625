package program

import "fmt"

// BeforeTransaction decodes the call arguments into accounts and checks them
// against the descriptor of the called transaction. It runs before the
// transaction body, so a mismatched call never reaches the handler.
func (d Descriptors) BeforeTransaction(ctx ContextInterface) error {
	fn, args := ctx.GetStub().GetFunctionAndParameters()

	desc, ok := d.Lookup(fn)
	if !ok {
		return nil
	}

	accounts, err := DecodeAccounts(desc, args)
	if err != nil {
		return err
	}
	if err := Validate(desc, accounts); err != nil {
		return err
	}

	ctx.SetAccounts(accounts)
	return nil
}

// RejectUnknown fails calls naming a transaction the contract does not have.
func RejectUnknown(ctx ContextInterface) error {
	fn, _ := ctx.GetStub().GetFunctionAndParameters()
	return fmt.Errorf("unknown transaction %q", fn)
}
