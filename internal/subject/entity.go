package subject

import "admin-console/internal/console"

const Name = "recommend_subject"

var DefaultEndpoints = console.Endpoints{
	Query:  "/api/sms/homeRecommendSubject/queryHomeRecommendSubjectList",
	Create: "/api/sms/homeRecommendSubject/addHomeRecommendSubject",
	Update: "/api/sms/homeRecommendSubject/updateHomeRecommendSubject",
	Delete: "/api/sms/homeRecommendSubject/deleteHomeRecommendSubject",
}

var recommendStatuses = map[int]console.EnumOption{
	0: {Text: "PC首页轮播", Status: "Success"},
	1: {Text: "app首页轮播", Status: "Success"},
}

func Entity(endpoints console.Endpoints) console.Entity[RecommendSubject] {
	return console.Entity[RecommendSubject]{
		Name:      Name,
		Title:     "专题推荐",
		Endpoints: endpoints,
		Ops:       console.Ops{Create: true, Update: true, Delete: true},
		Paginate:  true,
		Columns: console.Schema[RecommendSubject]{
			{Key: "id", Label: "编号", Value: func(s RecommendSubject) any { return s.ID }, HideInSearch: true},
			{Key: "subjectName", Label: "专题名称", Value: func(s RecommendSubject) any { return s.SubjectName }, Link: true},
			{Key: "recommendStatus", Label: "推荐状态", Value: func(s RecommendSubject) any { return s.RecommendStatus }, Format: console.Enum(recommendStatuses)},
			{Key: "sort", Label: "排序", Value: func(s RecommendSubject) any { return s.Sort }},
		},
		Form: []console.FormField{
			{Key: "id", Label: "主键", Kind: console.FieldInt, Hidden: true},
			{Key: "subjectId", Label: "专题编号", Kind: console.FieldInt},
			{Key: "subjectName", Label: "专题名称", Kind: console.FieldText},
			{Key: "recommendStatus", Label: "推荐状态", Kind: console.FieldEnum, Choices: []console.EnumChoice{
				{Value: 0, Label: "PC首页轮播"},
				{Value: 1, Label: "app首页轮播"},
			}},
			{Key: "sort", Label: "排序", Kind: console.FieldInt},
		},
	}
}
