package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"admin-console/internal/console"
	"admin-console/pkg/response"
)

// SessionHeader carries the console session id on every page request.
const SessionHeader = "X-Console-Session"

const sessionKey = "console.session"

// requireSession resolves the session header and stores the session in the
// gin context for the page handlers.
func (h *handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			abortWithError(c, errSessionRequired)
			return
		}
		sess, ok := h.sessions.get(id)
		if !ok {
			abortWithError(c, errSessionNotFound)
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// processPage returns the session and its page named by the :entity param.
func (h *handler) processPage(c *gin.Context) (*session, console.PageHandle, error) {
	sess := c.MustGet(sessionKey).(*session)
	p, err := h.sessions.page(c.Request.Context(), sess, c.Param("entity"))
	if err != nil {
		return nil, nil, err
	}
	return sess, p, nil
}

// processLoadReq binds the query params body. An empty body asks for the
// server defaults.
func (h *handler) processLoadReq(c *gin.Context) (loadReq, error) {
	var req loadReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req.QueryParams); err != nil {
		return req, badRequest(err)
	}
	return req, req.validate()
}

func (h *handler) processSelectionReq(c *gin.Context) (selectionReq, error) {
	var req selectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, req.validate()
}

// processOpenModalReq binds the :modal param and, for update/detail, the id.
func (h *handler) processOpenModalReq(c *gin.Context) (openModalReq, error) {
	var req openModalReq
	kind, ok := console.ParseModalKind(c.Param("modal"))
	if !ok {
		return req, errUnknownModal
	}
	req.Kind = kind
	if kind != console.ModalCreate {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, badRequest(err)
		}
	}
	return req, req.validate()
}

func (h *handler) processModalKind(c *gin.Context) (console.ModalKind, error) {
	kind, ok := console.ParseModalKind(c.Param("modal"))
	if !ok {
		return "", errUnknownModal
	}
	return kind, nil
}

// processRecordBody reads the raw record; the page decodes it into its own
// record type.
func (h *handler) processRecordBody(c *gin.Context) ([]byte, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, badRequest(err)
	}
	return raw, nil
}

func (h *handler) processRemovalReq(c *gin.Context) (removalReq, error) {
	var req removalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, req.validate()
}
