package loginlog

import "admin-console/internal/console"

const (
	Name     = "login_log"
	PageSize = 10
)

var DefaultEndpoints = console.Endpoints{
	Query:  "/api/ums/memberLoginLog/queryMemberLoginLogList",
	Delete: "/api/ums/memberLoginLog/deleteMemberLoginLog",
}

var loginTypes = map[int]console.EnumOption{
	0: {Text: "PC", Status: "Error"},
	1: {Text: "android", Status: "Success"},
	2: {Text: "ios", Status: "Success"},
	3: {Text: "小程序", Status: "Success"},
}

func Entity(endpoints console.Endpoints) console.Entity[LoginLog] {
	return console.Entity[LoginLog]{
		Name:      Name,
		Title:     "登录列表",
		Endpoints: endpoints,
		Ops:       console.Ops{Delete: true},
		PageSize:  PageSize,
		Paginate:  true,
		Columns: console.Schema[LoginLog]{
			{Key: "id", Label: "编号", Value: func(l LoginLog) any { return l.ID }, HideInSearch: true},
			{Key: "memberId", Label: "用户名", Value: func(l LoginLog) any { return l.MemberID }, Link: true},
			{Key: "ip", Label: "ip", Value: func(l LoginLog) any { return l.IP }},
			{Key: "province", Label: "省", Value: func(l LoginLog) any { return l.Province }},
			{Key: "city", Label: "城市", Value: func(l LoginLog) any { return l.City }},
			{Key: "loginType", Label: "登录类型", Value: func(l LoginLog) any { return l.LoginType }, Format: console.Enum(loginTypes)},
			{Key: "createTime", Label: "登录时间", Value: func(l LoginLog) any { return l.CreateTime }, HideInSearch: true},
		},
	}
}
