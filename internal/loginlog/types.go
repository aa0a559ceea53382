package loginlog

// LoginLog is one member login record (ums_member_login_log). Logs are
// written by the backend and can only be deleted here.
type LoginLog struct {
	ID         int64  `json:"id,omitempty"`
	MemberID   int64  `json:"memberId"`
	CreateTime string `json:"createTime,omitempty"`
	IP         string `json:"ip"`
	City       string `json:"city"`
	LoginType  int    `json:"loginType"`
	Province   string `json:"province"`
}

func (l LoginLog) RecordID() int64 { return l.ID }
