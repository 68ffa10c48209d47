package smartcalc

// BaseCurrency the currency every loaded rate is expressed against
const BaseCurrency Currency = "USD"

// Currency a currency code
type Currency string

// Amount a monetary amount
type Amount float64

// Rate an exchange rate relative to BaseCurrency
type Rate float64

// Rates maps currency codes to their rate against BaseCurrency
type Rates map[Currency]Rate

// Exchanged the outcome of converting an amount between two currencies
type Exchanged struct {
	From     Currency
	To       Currency
	Original Amount
	// Rate effective from -> to rate
	Rate   Rate
	Amount Amount
}

// Discounted the outcome of applying a percentage discount to a price
type Discounted struct {
	Price   Amount
	Percent float64
	Savings Amount
	Final   Amount
}
