package returnreason

import "admin-console/internal/console"

const (
	Name = "return_reason"

	// StatusFilter is the extra query parameter that narrows the list to
	// enabled (1) or disabled (0) reasons.
	StatusFilter = "status"
)

var DefaultEndpoints = console.Endpoints{
	Query:  "/api/oms/returnReason/queryReturnReasonList",
	Create: "/api/oms/returnReason/addReturnReason",
	Update: "/api/oms/returnReason/updateReturnReason",
	Delete: "/api/oms/returnReason/deleteReturnReason",
}

func Entity(endpoints console.Endpoints) console.Entity[ReturnReason] {
	return console.Entity[ReturnReason]{
		Name:      Name,
		Title:     "退货原因",
		Endpoints: endpoints,
		Ops:       console.Ops{Create: true, Update: true, Delete: true},
		Paginate:  true,
		Columns: console.Schema[ReturnReason]{
			{Key: "id", Label: "编号", Value: func(r ReturnReason) any { return r.ID }, HideInSearch: true},
			{Key: "name", Label: "原因类型", Value: func(r ReturnReason) any { return r.Name }, Link: true},
			{Key: "sort", Label: "排序", Value: func(r ReturnReason) any { return r.Sort }, HideInSearch: true},
			{Key: "status", Label: "是否可用", Value: func(r ReturnReason) any { return r.Status }, Format: console.Enum(console.YesNo)},
			{Key: "createTime", Label: "添加时间", Value: func(r ReturnReason) any { return r.CreateTime }, HideInSearch: true},
		},
		Form: []console.FormField{
			{Key: "id", Label: "主键", Kind: console.FieldInt, Hidden: true},
			{Key: "name", Label: "原因类型", Kind: console.FieldText},
			{Key: "sort", Label: "排序", Kind: console.FieldInt},
			{Key: "status", Label: "是否可用", Kind: console.FieldEnum, Choices: console.YesNoChoices},
		},
	}
}

// ByStatus returns params that list only reasons with the given status.
func ByStatus(status int) console.QueryParams {
	return console.QueryParams{
		Current: console.IntPtr(1),
		Extra:   map[string]any{StatusFilter: status},
	}
}
