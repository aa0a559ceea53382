package http

import (
	"admin-console/internal/console"
	"admin-console/pkg/notice"
)

// --- Request DTOs ---

type loadReq struct {
	console.QueryParams
}

func (r loadReq) validate() error { return r.QueryParams.Validate() }

// ---

type selectionReq struct {
	IDs []int64 `json:"ids"`
}

func (r selectionReq) validate() error { return nil }

// ---

type openModalReq struct {
	Kind console.ModalKind `json:"-"` // populated from URI param
	ID   int64             `json:"id"`
}

func (r openModalReq) validate() error {
	if r.Kind != console.ModalCreate && r.ID < 1 {
		return console.ErrIDRequired
	}
	return nil
}

// ---

type removalReq struct {
	IDs       []int64 `json:"ids"`
	Selection bool    `json:"selection"`
}

func (r removalReq) validate() error {
	if !r.Selection && len(r.IDs) == 0 {
		return console.ErrIDRequired
	}
	return nil
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID string `json:"session_id"`
}

type entitiesResp struct {
	Entities []console.EntityInfo `json:"entities"`
}

type pageResp struct {
	Page    console.Snapshot `json:"page"`
	Notices []notice.Notice  `json:"notices"`
}

func (h *handler) newPageResp(sess *session, p console.PageHandle) pageResp {
	return pageResp{
		Page:    p.Snapshot(),
		Notices: sess.feed.Active(),
	}
}

type mutationResp struct {
	Success bool             `json:"success"`
	Page    console.Snapshot `json:"page"`
	Notices []notice.Notice  `json:"notices"`
}

func (h *handler) newMutationResp(sess *session, p console.PageHandle, ok bool) mutationResp {
	return mutationResp{
		Success: ok,
		Page:    p.Snapshot(),
		Notices: sess.feed.Active(),
	}
}

type confirmationResp struct {
	Confirmation console.Confirmation `json:"confirmation"`
}

type noticesResp struct {
	Notices []notice.Notice `json:"notices"`
}
