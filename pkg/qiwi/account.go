package qiwi

import (
	"github.com/shopspring/decimal"
)

// Account is one funding source of the wallet.
type Account struct {
	Alias      string
	FsAlias    *string
	Title      *string
	HasBalance bool
	// Currency is an ISO-4217 numeric code.
	Currency int64
	Type     *AccountType
	// Balance is set only when HasBalance is true.
	Balance *AccountBalance
}

type AccountType struct {
	ID    string
	Title string
}

type AccountBalance struct {
	Amount   decimal.Decimal
	Currency int64
}

func AccountFromJSON(in RawInput) (*Account, error) {
	o, err := in.object("Account")
	if err != nil {
		return nil, err
	}
	return parseAccount(o)
}

func parseAccount(o object) (*Account, error) {
	var (
		acc Account
		err error
	)
	if acc.Alias, err = o.str("alias"); err != nil {
		return nil, err
	}
	if acc.Currency, err = o.integer("currency"); err != nil {
		return nil, err
	}
	if acc.FsAlias, err = o.optStr("fsAlias"); err != nil {
		return nil, err
	}
	if acc.Title, err = o.optStr("title"); err != nil {
		return nil, err
	}
	if acc.HasBalance, err = o.optBool("hasBalance"); err != nil {
		return nil, err
	}

	if t, ok, err := o.optObj("type"); err != nil {
		return nil, err
	} else if ok {
		if acc.Type, err = parseAccountType(t.as("AccountType")); err != nil {
			return nil, err
		}
	}

	if acc.HasBalance {
		if b, ok, err := o.optObj("balance"); err != nil {
			return nil, err
		} else if ok {
			if acc.Balance, err = parseAccountBalance(b.as("AccountBalance"), acc.Currency); err != nil {
				return nil, err
			}
		}
	}
	return &acc, nil
}

func parseAccountType(o object) (*AccountType, error) {
	id, err := o.str("id")
	if err != nil {
		return nil, err
	}
	title, err := o.str("title")
	if err != nil {
		return nil, err
	}
	return &AccountType{ID: id, Title: title}, nil
}

func parseAccountBalance(o object, accountCurrency int64) (*AccountBalance, error) {
	amount, err := o.amount("amount")
	if err != nil {
		return nil, err
	}
	currency, err := o.optInt("currency")
	if err != nil {
		return nil, err
	}
	b := &AccountBalance{Amount: amount, Currency: accountCurrency}
	if currency != nil {
		b.Currency = *currency
	}
	return b, nil
}

// AccountsFromJSON reads the "accounts" list of a funding-sources response.
func AccountsFromJSON(in RawInput) ([]Account, error) {
	o, err := in.object("Accounts")
	if err != nil {
		return nil, err
	}
	items, err := o.objects("accounts", "Account")
	if err != nil {
		return nil, err
	}
	res := make([]Account, 0, len(items))
	for _, item := range items {
		acc, err := parseAccount(item)
		if err != nil {
			return nil, err
		}
		res = append(res, *acc)
	}
	return res, nil
}

// OfferedAccount is an account type the wallet may open.
type OfferedAccount struct {
	Alias    string
	Currency int64
}

// OfferedAccountsFromJSON reads the offer list, which the API sends as a bare
// JSON array or wrapped into an "accounts" field.
func OfferedAccountsFromJSON(in RawInput) ([]OfferedAccount, error) {
	if in.kind == rawText {
		v, err := decodeJSON(in.text)
		if err == nil {
			if list, ok := v.([]any); ok {
				in = FromMap(map[string]any{"accounts": list})
			}
		}
	}
	o, err := in.object("OfferedAccounts")
	if err != nil {
		return nil, err
	}
	items, err := o.objects("accounts", "OfferedAccount")
	if err != nil {
		return nil, err
	}
	res := make([]OfferedAccount, 0, len(items))
	for _, item := range items {
		alias, err := item.str("alias")
		if err != nil {
			return nil, err
		}
		currency, err := item.integer("currency")
		if err != nil {
			return nil, err
		}
		res = append(res, OfferedAccount{Alias: alias, Currency: currency})
	}
	return res, nil
}

// findBalance returns the first balance in the given currency. Accounts that
// report no balance are skipped.
func findBalance(accounts []Account, currency int64) (decimal.Decimal, error) {
	for _, acc := range accounts {
		if acc.Currency == currency && acc.Balance != nil {
			return acc.Balance.Amount, nil
		}
	}
	return decimal.Zero, ErrProviderNotFound
}
