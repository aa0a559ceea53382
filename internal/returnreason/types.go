package returnreason

// ReturnReason is a reason a customer may pick when returning an order
// (oms_order_return_reason).
type ReturnReason struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	Sort       int    `json:"sort"`
	Status     int    `json:"status"`
	CreateTime string `json:"createTime,omitempty"`
}

func (r ReturnReason) RecordID() int64 { return r.ID }
