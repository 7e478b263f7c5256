package assistant

import (
	"regexp"
	"strings"
)

// Caller roles. Owner and admin share one rule set.
const (
	RoleCustomer = "customer"
	RoleCashier  = "cashier"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

// Intent is the closed taxonomy the router dispatches on.
type Intent string

const (
	IntentConnectCashier Intent = "connect_to_cashier"
	IntentOrderStatus    Intent = "order_status"
	IntentProductPrice   Intent = "product_price"
	IntentProductStock   Intent = "product_stock"
	IntentShippingInfo   Intent = "shipping_info"
	IntentPaymentOptions Intent = "payment_options"
	IntentHelp           Intent = "help"

	IntentStockLookup  Intent = "stock_lookup"
	IntentPriceLookup  Intent = "price_lookup"
	IntentAddItemHelp  Intent = "add_item_help"
	IntentDiscountHelp Intent = "discount_help"
	IntentReceiptHelp  Intent = "receipt_help"
	IntentReturnHelp   Intent = "return_help"

	IntentLowStock          Intent = "low_stock"
	IntentReorderWhat       Intent = "reorder_what"
	IntentSalesForecast     Intent = "sales_forecast"
	IntentDemandPredictions Intent = "demand_predictions"
	IntentInventorySummary  Intent = "inventory_summary"
	IntentSalesSummary      Intent = "sales_summary"
	IntentBestSellers       Intent = "best_sellers"
	IntentProductSuggestion Intent = "product_suggestion"

	IntentUnknown Intent = "unknown"
)

// shortQueryLimit is the longest message the catch-all will still treat
// as an implicit product lookup.
const shortQueryLimit = 80

// intentRule pairs a pattern with the intent it selects. A pattern with a
// capture group extracts the product query from the match. Rules are
// evaluated in table order; the first match wins, so precedence is the
// list itself.
type intentRule struct {
	pattern *regexp.Regexp
	intent  Intent
}

var customerRules = []intentRule{
	{regexp.MustCompile(`connect.*cashier|talk to (?:a |the )?(?:cashier|human|someone)|speak (?:to|with)`), IntentConnectCashier},
	{regexp.MustCompile(`order status|my orders?|where(?:'s| is) my order|track.*order`), IntentOrderStatus},
	{regexp.MustCompile(`(?:price of|how much (?:is|are|for)|cost of)\s+(.+)`), IntentProductPrice},
	{regexp.MustCompile(`(?:is|are)\s+(.+?)\s+(?:in stock|available)`), IntentProductStock},
	{regexp.MustCompile(`(?:do you have|got any|in stock|stock of)\s*(.*)`), IntentProductStock},
	{regexp.MustCompile(`shipping|deliver`), IntentShippingInfo},
	{regexp.MustCompile(`payment|pay with|gcash|credit card|installment`), IntentPaymentOptions},
	{regexp.MustCompile(`^help$|what can you do|how do(?:es)? this work`), IntentHelp},
}

var cashierRules = []intentRule{
	{regexp.MustCompile(`(?:is|are|do we have)\s+(.+?)\s+in stock`), IntentStockLookup},
	{regexp.MustCompile(`(?:stock of|how many|stock for|quantity of)\s+(.+)`), IntentStockLookup},
	{regexp.MustCompile(`(?:price of|how much (?:is|are|for)|price for)\s+(.+)`), IntentPriceLookup},
	{regexp.MustCompile(`add.*item|new item|register.*product`), IntentAddItemHelp},
	{regexp.MustCompile(`discount|promo`), IntentDiscountHelp},
	{regexp.MustCompile(`receipt|reprint`), IntentReceiptHelp},
	{regexp.MustCompile(`return|refund|exchange`), IntentReturnHelp},
	{regexp.MustCompile(`^help$|what can you do`), IntentHelp},
}

var ownerRules = []intentRule{
	{regexp.MustCompile(`low stock|running low|running out|out of stock`), IntentLowStock},
	{regexp.MustCompile(`reorder|restock|order more`), IntentReorderWhat},
	{regexp.MustCompile(`forecast|projection|next (?:week|month)`), IntentSalesForecast},
	{regexp.MustCompile(`demand|predictions?`), IntentDemandPredictions},
	{regexp.MustCompile(`inventory|stock summary|stock value`), IntentInventorySummary},
	{regexp.MustCompile(`sales|revenue|earnings|how much did we make`), IntentSalesSummary},
	{regexp.MustCompile(`best[- ]?sell|top product|most sold`), IntentBestSellers},
	{regexp.MustCompile(`suggest|recommend|what should (?:i|we) (?:sell|stock|carry)`), IntentProductSuggestion},
}

// Classify matches a free-text message against the role's rule table and
// returns the chosen intent plus any extracted product query. Matching is
// case-insensitive over the trimmed input; no rule match falls through to
// the role's catch-all (a short message becomes an implicit product
// lookup for customers and cashiers).
func Classify(role, message string) (Intent, string) {
	intent, query, _ := classify(role, message)
	return intent, query
}

// classify additionally reports whether the short-message catch-all chose
// the intent. The router needs the distinction: a cashier catch-all lookup
// renders the combined stock+price line, an explicit price lookup does not.
func classify(role, message string) (Intent, string, bool) {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return IntentUnknown, "", false
	}

	var rules []intentRule
	switch role {
	case RoleCustomer:
		rules = customerRules
	case RoleCashier:
		rules = cashierRules
	default:
		rules = ownerRules
	}

	for _, rule := range rules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		query := ""
		if len(m) > 1 {
			query = strings.Trim(strings.TrimSpace(m[1]), "?!.\"'")
		}
		return rule.intent, query, false
	}

	if len(text) < shortQueryLimit {
		switch role {
		case RoleCustomer:
			return IntentProductPrice, strings.Trim(text, "?!.\"'"), true
		case RoleCashier:
			return IntentPriceLookup, strings.Trim(text, "?!.\"'"), true
		}
	}
	return IntentUnknown, "", false
}
