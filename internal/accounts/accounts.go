// Package accounts holds the chart of accounts.
//
// The catalogue is fixed at compile time: a Kleinunternehmer EÜR uses a
// small, statutory set of booking accounts (SKR 4 subset). Accounts are
// never created or deleted at runtime.
package accounts

// ID identifies a booking account.
type ID string

const (
	ErloeseKleinunternehmer ID = "erloese_kleinunternehmer"
	Miete                   ID = "miete"
	StromGas                ID = "strom_gas"
	SonstigerBetriebsbedarf ID = "sonstiger_betriebsbedarf"
	Ware                    ID = "ware"
	Aufmerksamkeiten        ID = "aufmerksamkeiten"
	Betriebsausstattung     ID = "betriebsausstattung"
	GWG                     ID = "gwg"
)

// Category is the direction of money flow an account records.
// Every booking on an account must have the same direction as
// the account's category.
type Category string

const (
	Income  Category = "income"
	Expense Category = "expense"
)

// Valid reports whether the category is one of the two known values.
func (c Category) Valid() bool {
	return c == Income || c == Expense
}

// Account is one line of the chart of accounts.
type Account struct {
	ID       ID       `json:"id" example:"miete"`
	Name     string   `json:"name" example:"Miete"`
	Category Category `json:"category" example:"expense"`
}

// chart lists all accounts in statutory order. The EÜR report
// enumerates them in exactly this order.
var chart = []Account{
	{ID: ErloeseKleinunternehmer, Name: "Erlöse als Kleinunternehmer", Category: Income},
	{ID: Miete, Name: "Miete", Category: Expense},
	{ID: StromGas, Name: "Strom/Gas", Category: Expense},
	{ID: SonstigerBetriebsbedarf, Name: "Sonstiger Betriebsbedarf", Category: Expense},
	{ID: Ware, Name: "Ware", Category: Expense},
	{ID: Aufmerksamkeiten, Name: "Aufmerksamkeiten", Category: Expense},
	{ID: Betriebsausstattung, Name: "Betriebsausstattung", Category: Expense},
	{ID: GWG, Name: "Geringwertige Wirtschaftsgüter (GWG)", Category: Expense},
}

// All returns the full chart of accounts in declaration order.
func All() []Account {
	accounts := make([]Account, len(chart))
	copy(accounts, chart)
	return accounts
}

// OfCategory returns all accounts of the category, preserving
// declaration order.
func OfCategory(category Category) []Account {
	var accounts []Account
	for _, account := range chart {
		if account.Category == category {
			accounts = append(accounts, account)
		}
	}
	return accounts
}

// ByID returns the account with the ID. The second return value
// reports whether the account exists. Callers must not assume an
// id loaded from the database is valid, see DefaultFor.
func ByID(id ID) (Account, bool) {
	for _, account := range chart {
		if account.ID == id {
			return account, true
		}
	}
	return Account{}, false
}

// DefaultFor returns the first account of the category. It is used
// to reset an entry's account when its direction changes.
func DefaultFor(category Category) Account {
	for _, account := range chart {
		if account.Category == category {
			return account
		}
	}

	// Both categories have at least one account in the chart
	return Account{}
}
