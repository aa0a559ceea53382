package console

// Operator-facing notices.
const (
	MsgCreating      = "正在添加"
	MsgCreateSuccess = "添加成功"
	MsgCreateFailed  = "添加失败请重试！"

	MsgUpdating      = "正在更新"
	MsgUpdateSuccess = "更新成功"
	MsgUpdateFailed  = "更新失败请重试！"

	MsgDeleting      = "正在删除"
	MsgDeleteSuccess = "删除成功，即将刷新"
	MsgDeleteFailed  = "删除失败，请重试"

	ConfirmDeleteTitle   = "是否删除记录?"
	ConfirmDeleteContent = "删除的记录不能恢复,请确认!"
)

// Shared enum labels.
var (
	YesNo = map[int]EnumOption{
		0: {Text: "否", Status: "Success"},
		1: {Text: "是", Status: "Success"},
	}
	YesNoChoices = []EnumChoice{{Value: 0, Label: "否"}, {Value: 1, Label: "是"}}
)
