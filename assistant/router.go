package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stocksense/analytics"
	"stocksense/models"
	"stocksense/store"
	"stocksense/utils"
)

const lookupLimit = 5

// Router dispatches classified intents to the engine and the store. It
// performs no computation of its own beyond string matching and response
// formatting.
type Router struct {
	store  store.Store
	engine *analytics.Engine
	now    func() time.Time
}

func NewRouter(st store.Store, engine *analytics.Engine) *Router {
	return &Router{store: st, engine: engine, now: time.Now}
}

// Reply answers a free-text message for the given caller. The reply is
// always user-facing text; lookup misses produce a "not found" sentence,
// never an error.
func (r *Router) Reply(ctx context.Context, role, userID, message string) (Intent, string, error) {
	intent, query, fallback := classify(role, message)

	switch intent {
	case IntentConnectCashier:
		return r.connectCashier(ctx, intent, message)
	case IntentOrderStatus:
		return r.orderStatus(ctx, intent, userID)
	case IntentProductPrice:
		return r.productPrice(ctx, intent, query, false)
	case IntentProductStock:
		return r.productStock(ctx, intent, query)
	case IntentShippingInfo:
		return intent, "We deliver within Metro Manila in 1-2 days and nationwide in 3-7 days. Orders over ₱1,500.00 ship free.", nil
	case IntentPaymentOptions:
		return intent, "We accept cash, GCash, Maya, and major credit/debit cards. Online orders can also pay on delivery.", nil
	case IntentHelp:
		return r.help(role, intent)

	case IntentStockLookup:
		return r.stockLookup(ctx, intent, query)
	case IntentPriceLookup:
		return r.productPrice(ctx, intent, query, fallback)
	case IntentAddItemHelp:
		return intent, "To add an item to the sale, scan its barcode or search by name, then tap the item and set the quantity.", nil
	case IntentDiscountHelp:
		return intent, "Discounts: open the cart, tap the item, and choose an active promotion. Manager approval is needed above 20%.", nil
	case IntentReceiptHelp:
		return intent, "Receipts print automatically after payment. To reprint, open Sales History and select the transaction.", nil
	case IntentReturnHelp:
		return intent, "Returns: find the original transaction in Sales History, select the items, and choose Refund. Stock is restored automatically.", nil

	case IntentLowStock:
		return r.lowStock(ctx, intent)
	case IntentReorderWhat:
		return r.reorderWhat(ctx, intent)
	case IntentSalesForecast:
		return r.salesForecast(ctx, intent)
	case IntentDemandPredictions:
		return r.demandPredictions(ctx, intent)
	case IntentInventorySummary:
		return r.inventorySummary(ctx, intent)
	case IntentSalesSummary:
		return r.salesSummary(ctx, intent)
	case IntentBestSellers:
		return r.bestSellers(ctx, intent)
	case IntentProductSuggestion:
		return r.productSuggestion(ctx, intent)
	}

	return IntentUnknown, r.unknownReply(role), nil
}

func (r *Router) connectCashier(ctx context.Context, intent Intent, message string) (Intent, string, error) {
	notified, err := r.store.CreateNotificationForRole(ctx, RoleCashier,
		"Customer assistance request",
		fmt.Sprintf("A customer asked for help: %q", strings.TrimSpace(message)),
		"chat")
	if err != nil {
		return intent, "", err
	}
	if notified == 0 {
		return intent, "No cashiers are online right now, but your request has been logged. Please try again shortly.", nil
	}
	return intent, "Got it! I've notified our cashiers and someone will assist you shortly.", nil
}

func (r *Router) orderStatus(ctx context.Context, intent Intent, userID string) (Intent, string, error) {
	orders, err := r.store.ListRecentOrders(ctx, userID, lookupLimit)
	if err != nil {
		return intent, "", err
	}
	if len(orders) == 0 {
		return intent, "You have no orders yet. Once you place one, I can track it here for you.", nil
	}
	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("Order %s – %s – %s (%s)",
			o.ID, utils.FormatPeso(o.TotalAmount), o.Status, o.CreatedAt.Format("Jan 2")))
	}
	return intent, "Here are your recent orders:\n" + strings.Join(lines, "\n"), nil
}

// productPrice answers both the customer price intent and the cashier
// price lookup. Only the cashier catch-all lookup with exactly one match
// gets the combined stock+price line; explicit price queries return the
// bare price line.
func (r *Router) productPrice(ctx context.Context, intent Intent, query string, withStock bool) (Intent, string, error) {
	if query == "" {
		return intent, "Which product would you like the price of?", nil
	}
	products, err := r.store.SearchProducts(ctx, query, lookupLimit)
	if err != nil {
		return intent, "", err
	}
	if len(products) == 0 {
		return intent, fmt.Sprintf("Sorry, I couldn't find a product matching %q.", query), nil
	}
	if withStock && len(products) == 1 {
		p := products[0]
		return intent, fmt.Sprintf("%s – %s (%d in stock)", p.Name, utils.FormatPeso(p.UnitPrice), p.Quantity), nil
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s – %s", p.Name, utils.FormatPeso(p.UnitPrice)))
	}
	return intent, strings.Join(lines, "\n"), nil
}

func (r *Router) productStock(ctx context.Context, intent Intent, query string) (Intent, string, error) {
	if query == "" {
		return intent, "Which product are you asking about?", nil
	}
	products, err := r.store.SearchProducts(ctx, query, lookupLimit)
	if err != nil {
		return intent, "", err
	}
	if len(products) == 0 {
		return intent, fmt.Sprintf("Sorry, I couldn't find a product matching %q.", query), nil
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		if p.Quantity == 0 {
			lines = append(lines, fmt.Sprintf("%s – out of stock", p.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s – %d in stock", p.Name, p.Quantity))
	}
	return intent, strings.Join(lines, "\n"), nil
}

func (r *Router) stockLookup(ctx context.Context, intent Intent, query string) (Intent, string, error) {
	return r.productStock(ctx, intent, query)
}

func (r *Router) lowStock(ctx context.Context, intent Intent) (Intent, string, error) {
	rows, err := r.engine.StockDepletion(ctx)
	if err != nil {
		return intent, "", err
	}
	lines := make([]string, 0)
	for _, row := range rows {
		if row.RiskLevel == models.RiskSafe {
			continue
		}
		if row.CurrentQuantity == 0 {
			lines = append(lines, fmt.Sprintf("%s – out of stock", row.ProductName))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s – %d left (~%.0f days)",
			row.ProductName, row.CurrentQuantity, *row.EstimatedDaysLeft))
	}
	if len(lines) == 0 {
		return intent, "All products are comfortably stocked. Nothing is running low.", nil
	}
	return intent, "Products running low:\n" + strings.Join(lines, "\n"), nil
}

// reorderWhat merges the live low-stock view with the latest persisted
// demand predictions: the prediction's suggested restock wins when one
// exists for the product.
func (r *Router) reorderWhat(ctx context.Context, intent Intent) (Intent, string, error) {
	recommendations, err := r.engine.ReorderSuggestions(ctx)
	if err != nil {
		return intent, "", err
	}
	latest, err := r.engine.LatestPredictions(ctx)
	if err != nil {
		return intent, "", err
	}
	predicted := make(map[string]models.DemandPrediction, len(latest))
	for _, p := range latest {
		predicted[p.ProductID] = p
	}

	if len(recommendations) == 0 {
		return intent, "Nothing needs reordering right now. Stock comfortably covers current demand.", nil
	}
	lines := make([]string, 0, len(recommendations))
	for _, rec := range recommendations {
		qty := rec.SuggestedQuantity
		if p, ok := predicted[rec.ProductID]; ok && p.SuggestedRestock > qty {
			qty = p.SuggestedRestock
		}
		lines = append(lines, fmt.Sprintf("%s – reorder %d (%s)", rec.ProductName, qty, rec.Timeframe))
	}
	return intent, "Suggested reorders:\n" + strings.Join(lines, "\n"), nil
}

// salesForecast blends the trailing-30-day revenue projection with the
// latest per-product demand predictions.
func (r *Router) salesForecast(ctx context.Context, intent Intent) (Intent, string, error) {
	summary, err := r.engine.ForecastSummary(ctx)
	if err != nil {
		return intent, "", err
	}
	latest, err := r.engine.LatestPredictions(ctx)
	if err != nil {
		return intent, "", err
	}
	var predictedUnits float64
	for _, p := range latest {
		predictedUnits += p.PredictedDemand
	}
	reply := fmt.Sprintf(
		"Based on the last 30 days: expected revenue is %s over the next 7 days and %s over the next 30 (%s vs the prior period).",
		utils.FormatPeso(summary.Next7Days), utils.FormatPeso(summary.Next30Days), utils.FormatPercent(summary.GrowthPercent))
	if predictedUnits > 0 {
		reply += fmt.Sprintf(" Latest demand predictions expect about %.0f units sold across tracked products.", predictedUnits)
	}
	if summary.LowStockCount > 0 {
		reply += fmt.Sprintf(" %d product(s) may stock out within the week.", summary.LowStockCount)
	}
	return intent, reply, nil
}

func (r *Router) demandPredictions(ctx context.Context, intent Intent) (Intent, string, error) {
	latest, err := r.engine.LatestPredictions(ctx)
	if err != nil {
		return intent, "", err
	}
	if len(latest) == 0 {
		return intent, "No demand predictions yet. Run a prediction from the insights dashboard first.", nil
	}
	names, err := r.productNames(ctx)
	if err != nil {
		return intent, "", err
	}
	lines := make([]string, 0, len(latest))
	for _, p := range latest {
		name := names[p.ProductID]
		if name == "" {
			name = p.ProductID
		}
		lines = append(lines, fmt.Sprintf("%s – predicted demand %.2f, restock %d, risk %s",
			name, p.PredictedDemand, p.SuggestedRestock, p.RiskOfStockout))
	}
	return intent, "Latest demand predictions:\n" + strings.Join(lines, "\n"), nil
}

func (r *Router) inventorySummary(ctx context.Context, intent Intent) (Intent, string, error) {
	products, err := r.store.ListProducts(ctx)
	if err != nil {
		return intent, "", err
	}
	totalUnits, outOfStock := 0, 0
	var value float64
	for _, p := range products {
		totalUnits += p.Quantity
		value += p.UnitPrice * float64(p.Quantity)
		if p.Quantity == 0 {
			outOfStock++
		}
	}
	return intent, fmt.Sprintf("Inventory: %d products, %d units on hand, stock value %s. %d product(s) out of stock.",
		len(products), totalUnits, utils.FormatPeso(utils.Round2(value)), outOfStock), nil
}

func (r *Router) salesSummary(ctx context.Context, intent Intent) (Intent, string, error) {
	now := r.now().UTC()
	sales, err := r.store.ListSales(ctx, now.AddDate(0, 0, -analytics.TrailingWindowDays), utils.EndOfDay(now))
	if err != nil {
		return intent, "", err
	}
	var revenue float64
	for _, s := range sales {
		revenue += s.TotalAmount
	}
	return intent, fmt.Sprintf("Last 30 days: %d transactions totalling %s.",
		len(sales), utils.FormatPeso(utils.Round2(revenue))), nil
}

func (r *Router) bestSellers(ctx context.Context, intent Intent) (Intent, string, error) {
	sellers, err := r.store.BestSellers(ctx, lookupLimit)
	if err != nil {
		return intent, "", err
	}
	if len(sellers) == 0 {
		return intent, "No sales recorded yet, so there are no best sellers to rank.", nil
	}
	lines := make([]string, 0, len(sellers))
	for i, s := range sellers {
		lines = append(lines, fmt.Sprintf("%d. %s – %d sold", i+1, s.ProductName, s.TotalSold))
	}
	return intent, "Best sellers (all time):\n" + strings.Join(lines, "\n"), nil
}

// productSuggestion prefers low-risk products with positive predicted
// demand; with no usable predictions it falls back to the first products
// on file.
func (r *Router) productSuggestion(ctx context.Context, intent Intent) (Intent, string, error) {
	latest, err := r.engine.LatestPredictions(ctx)
	if err != nil {
		return intent, "", err
	}
	names, err := r.productNames(ctx)
	if err != nil {
		return intent, "", err
	}

	suggested := make([]string, 0, lookupLimit)
	for _, p := range latest {
		if p.RiskOfStockout != models.StockoutLow || p.PredictedDemand <= 0 {
			continue
		}
		name := names[p.ProductID]
		if name == "" {
			name = p.ProductID
		}
		suggested = append(suggested, name)
		if len(suggested) == lookupLimit {
			break
		}
	}

	if len(suggested) == 0 {
		products, err := r.store.ListProducts(ctx)
		if err != nil {
			return intent, "", err
		}
		for i, p := range products {
			if i == lookupLimit {
				break
			}
			suggested = append(suggested, p.Name)
		}
	}
	if len(suggested) == 0 {
		return intent, "No products on file yet, so I have nothing to suggest.", nil
	}
	return intent, "Products worth pushing: " + strings.Join(suggested, ", ") + ".", nil
}

func (r *Router) productNames(ctx context.Context) (map[string]string, error) {
	products, err := r.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (r *Router) help(role string, intent Intent) (Intent, string, error) {
	switch role {
	case RoleCustomer:
		return intent, "You can ask me about product prices and stock, your order status, shipping, or payment options. Say \"connect me to a cashier\" to reach a person.", nil
	case RoleCashier:
		return intent, "Ask me for stock or price of any product, or how to add items, apply discounts, reprint receipts, and process returns.", nil
	}
	return intent, r.unknownReply(role), nil
}

func (r *Router) unknownReply(role string) string {
	switch role {
	case RoleCustomer:
		return "Sorry, I didn't catch that. Try asking about a product's price or stock, your orders, shipping, or payments."
	case RoleCashier:
		return "Sorry, I didn't catch that. Try \"price of <product>\", \"stock of <product>\", or ask about discounts, receipts, and returns."
	}
	return "I can answer: low stock, what to reorder, sales forecast, demand predictions, inventory summary, sales summary, best sellers, and product suggestions."
}
