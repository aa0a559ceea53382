package category

// Category is a product category (pms_product_category).
type Category struct {
	ID           int64      `json:"id,omitempty"`
	ParentID     int64      `json:"parentId"`
	Name         string     `json:"name"`
	Level        int        `json:"level"`
	ProductCount int        `json:"productCount"`
	ProductUnit  string     `json:"productUnit"`
	NavStatus    int        `json:"navStatus"`
	ShowStatus   int        `json:"showStatus"`
	Sort         int        `json:"sort"`
	Icon         string     `json:"icon"`
	Keywords     string     `json:"keywords"`
	Description  string     `json:"description"`
	Children     []Category `json:"children,omitempty"`
}

func (c Category) RecordID() int64 { return c.ID }

func (c Category) RecordChildren() []Category { return c.Children }
