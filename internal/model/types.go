package model

import "time"

// -----------------------------------------------------------------------------
// Price Types
// -----------------------------------------------------------------------------

// PriceRecord represents one trading day of OHLCV prices for a symbol.
type PriceRecord struct {
	Symbol string    // Stock ticker (e.g., "AAPL")
	Date   time.Time // Trading day (UTC midnight)
	Open   float64   // Opening price
	High   float64   // Intraday high
	Low    float64   // Intraday low
	Close  float64   // Closing price
	Volume int64     // Shares traded
}

// -----------------------------------------------------------------------------
// Reference Types
// -----------------------------------------------------------------------------

// Stock represents a listed company in the trading universe.
type Stock struct {
	Symbol      string // Primary key (e.g., "AAPL")
	CompanyName string // Display name
	Sector      string // Sector (e.g., "Technology")
	Exchange    string // Listing exchange (e.g., "NASDAQ")
}

// Account represents a brokerage account.
type Account struct {
	AccountID   string  // Primary key (ACC%05d)
	UserName    string  // Account holder name
	Email       string  // Contact email
	AccountType string  // "individual" or "institutional"
	Balance     float64 // Cash balance in dollars
}

// Order represents a buy or sell order placed by an account.
type Order struct {
	OrderID   string    // Primary key (ORD%06d)
	AccountID string    // Foreign key to Account
	Symbol    string    // Foreign key to Stock
	OrderType string    // "buy" or "sell"
	Quantity  int       // Shares requested
	Price     float64   // Limit price in dollars
	Status    string    // "filled", "cancelled", or "partial"
	CreatedAt time.Time // Order placement time
}

// Trade represents the execution of a filled or partially filled order.
type Trade struct {
	TradeID     string    // Primary key (TRD%06d)
	OrderID     string    // Foreign key to Order
	AccountID   string    // Account that placed the order
	Symbol      string    // Traded symbol
	TradeType   string    // Mirrors the order type
	Quantity    int       // Shares executed
	Price       float64   // Execution price in dollars
	TotalAmount float64   // Quantity * Price, rounded to cents
	TradedAt    time.Time // Execution time
}

// Order statuses.
const (
	OrderStatusFilled    = "filled"
	OrderStatusCancelled = "cancelled"
	OrderStatusPartial   = "partial"
)

// Order and trade sides.
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// Account types.
const (
	AccountTypeIndividual    = "individual"
	AccountTypeInstitutional = "institutional"
)
