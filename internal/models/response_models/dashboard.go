package response_models

type DashboardSummary struct {
	TotalOrders     int64 `json:"total_orders"`
	PendingOrders   int64 `json:"pending_orders"`
	PaidOrders      int64 `json:"paid_orders"`
	CancelledOrders int64 `json:"cancelled_orders"`
	PaidRevenue     int64 `json:"paid_revenue"` // IDR, settled orders only
}
