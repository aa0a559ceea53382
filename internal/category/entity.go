package category

import (
	"admin-console/internal/console"
)

const (
	Name         = "category"
	RootParentID = 0
)

// DefaultEndpoints are the product category routes of the admin backend.
var DefaultEndpoints = console.Endpoints{
	Query:  "/api/pms/productCategory/queryProductCategoryList",
	Create: "/api/pms/productCategory/addProductCategory",
	Update: "/api/pms/productCategory/updateProductCategory",
	Delete: "/api/pms/productCategory/deleteProductCategory",
}

var levels = map[int]console.EnumOption{
	0: {Text: "一级", Status: "Success"},
	1: {Text: "二级", Status: "Success"},
}

// Entity describes the category page. The whole tree is loaded at once.
func Entity(endpoints console.Endpoints) console.Entity[Category] {
	return console.Entity[Category]{
		Name:      Name,
		Title:     "分类列表",
		Endpoints: endpoints,
		Ops:       console.Ops{Create: true, Update: true, Delete: true},
		Paginate:  false,
		Columns: console.Schema[Category]{
			{Key: "id", Label: "编号", Value: func(c Category) any { return c.ID }, HideInSearch: true},
			{Key: "name", Label: "分类名称", Value: func(c Category) any { return c.Name }, Link: true},
			{Key: "icon", Label: "图标", Value: func(c Category) any { return c.Icon }, Format: console.Thumbnail(100, 80)},
			{Key: "level", Label: "分类级别", Value: func(c Category) any { return c.Level }, Format: console.Enum(levels)},
			{Key: "productCount", Label: "产品数量", Value: func(c Category) any { return c.ProductCount }},
			{Key: "productUnit", Label: "产品单位", Value: func(c Category) any { return c.ProductUnit }},
			{Key: "navStatus", Label: "是否显示在导航栏", Value: func(c Category) any { return c.NavStatus }, Format: console.Enum(console.YesNo)},
			{Key: "showStatus", Label: "显示状态", Value: func(c Category) any { return c.ShowStatus }, Format: console.Enum(console.YesNo)},
			{Key: "sort", Label: "排序", Value: func(c Category) any { return c.Sort }},
			{Key: "keywords", Label: "关键字", Value: func(c Category) any { return c.Keywords }},
			{Key: "description", Label: "描述", Value: func(c Category) any { return c.Description }},
		},
		Form: []console.FormField{
			{Key: "id", Label: "主键", Kind: console.FieldInt, Hidden: true},
			{Key: "parentId", Label: "上级分类", Kind: console.FieldInt},
			{Key: "name", Label: "分类名称", Kind: console.FieldText},
			{Key: "level", Label: "分类级别", Kind: console.FieldEnum, Choices: []console.EnumChoice{{Value: 0, Label: "一级"}, {Value: 1, Label: "二级"}}},
			{Key: "productUnit", Label: "产品单位", Kind: console.FieldText},
			{Key: "navStatus", Label: "是否显示在导航栏", Kind: console.FieldEnum, Choices: console.YesNoChoices},
			{Key: "showStatus", Label: "显示状态", Kind: console.FieldEnum, Choices: console.YesNoChoices},
			{Key: "sort", Label: "排序", Kind: console.FieldInt},
			{Key: "icon", Label: "图标", Kind: console.FieldText},
			{Key: "keywords", Label: "关键字", Kind: console.FieldText},
			{Key: "description", Label: "描述", Kind: console.FieldText},
		},
		PostProcess: Tree,
	}
}
