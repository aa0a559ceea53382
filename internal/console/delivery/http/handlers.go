package http

import (
	"github.com/gin-gonic/gin"

	"admin-console/internal/console"
	"admin-console/pkg/response"
)

// CreateSession godoc
// @Summary     Open a console session
// @Description Mints a session id. Send it as X-Console-Session on every page request.
// @Tags        Console
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/console/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	sess := h.sessions.create()
	h.l.Infof(c.Request.Context(), "console session %s opened", sess.id)
	response.OK(c, sessionResp{SessionID: sess.id})
}

// ListEntities godoc
// @Summary     List managed entities
// @Description Returns every entity with its columns, form fields and supported operations.
// @Tags        Console
// @Produce     json
// @Success     200 {object} entitiesResp
// @Router      /api/v1/console/entities [GET]
func (h *handler) ListEntities(c *gin.Context) {
	response.OK(c, entitiesResp{Entities: h.reg.Entities()})
}

// GetPage godoc
// @Summary     Get a page
// @Description Returns the page snapshot. The first request for an entity loads its first page.
// @Tags        Console
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Success     200 {object} pageResp
// @Failure     404 {object} response.Resp "Unknown entity or session"
// @Router      /api/v1/console/pages/{entity} [GET]
func (h *handler) GetPage(c *gin.Context) {
	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newPageResp(sess, p))
}

// LoadPage godoc
// @Summary     Load a page
// @Description Fetches rows with the given paging, filter and sorter. Clears the selection.
// @Tags        Console
// @Accept      json
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       body body console.QueryParams false "Query params"
// @Success     200 {object} pageResp
// @Failure     400 {object} response.Resp "Invalid params"
// @Failure     502 {object} response.Resp "Backend query failed"
// @Router      /api/v1/console/pages/{entity}/load [POST]
func (h *handler) LoadPage(c *gin.Context) {
	ctx := c.Request.Context()

	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	req, err := h.processLoadReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := p.Load(ctx, req.QueryParams); err != nil {
		h.l.Errorf(ctx, "page.Load %s: %v", c.Param("entity"), err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newPageResp(sess, p))
}

// Select godoc
// @Summary     Replace the selection
// @Description Selects the rows of the current page with the given ids. An empty list clears it.
// @Tags        Console
// @Accept      json
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       body body selectionReq true "Selected ids"
// @Success     200 {object} pageResp
// @Failure     404 {object} response.Resp "Row not on the current page"
// @Router      /api/v1/console/pages/{entity}/selection [PUT]
func (h *handler) Select(c *gin.Context) {
	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	req, err := h.processSelectionReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if len(req.IDs) == 0 {
		p.ClearSelection()
	} else if err := p.Select(req.IDs); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newPageResp(sess, p))
}

// OpenModal godoc
// @Summary     Open a modal
// @Description Opens the create modal, or the update modal / detail drawer for a row.
// @Tags        Console
// @Accept      json
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       modal path string true "create, update or detail"
// @Param       body body openModalReq false "Row id for update and detail"
// @Success     200 {object} pageResp
// @Failure     409 {object} response.Resp "Create and update cannot be open together"
// @Router      /api/v1/console/pages/{entity}/modals/{modal}/open [POST]
func (h *handler) OpenModal(c *gin.Context) {
	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	req, err := h.processOpenModalReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	switch req.Kind {
	case console.ModalCreate:
		err = p.OpenCreate()
	case console.ModalUpdate:
		err = p.OpenUpdate(req.ID)
	case console.ModalDetail:
		err = p.OpenDetail(req.ID)
	}
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newPageResp(sess, p))
}

// CloseModal godoc
// @Summary     Close a modal
// @Tags        Console
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       modal path string true "create, update or detail"
// @Success     200 {object} pageResp
// @Router      /api/v1/console/pages/{entity}/modals/{modal}/close [POST]
func (h *handler) CloseModal(c *gin.Context) {
	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	kind, err := h.processModalKind(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	switch kind {
	case console.ModalCreate:
		p.CloseCreate()
	case console.ModalUpdate:
		p.CloseUpdate()
	case console.ModalDetail:
		p.CloseDetail()
	}
	response.OK(c, h.newPageResp(sess, p))
}

// Create godoc
// @Summary     Submit the create form
// @Description Creates a record. On success the create modal closes and the page reloads. A rejected create is reported with success=false and an error notice.
// @Tags        Console
// @Accept      json
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       body body object true "Record fields, without id"
// @Success     200 {object} mutationResp
// @Failure     409 {object} response.Resp "Another action is in progress"
// @Router      /api/v1/console/pages/{entity}/create [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	raw, err := h.processRecordBody(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	ok, err := p.SubmitCreateJSON(ctx, raw)
	if err != nil && !ok {
		h.l.Warnf(ctx, "page.SubmitCreate %s: %v", c.Param("entity"), err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newMutationResp(sess, p, ok))
}

// Update godoc
// @Summary     Submit the update form
// @Description Updates a record. On success the update modal closes and the page reloads.
// @Tags        Console
// @Accept      json
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       body body object true "Full record including id"
// @Success     200 {object} mutationResp
// @Failure     409 {object} response.Resp "Another action is in progress"
// @Router      /api/v1/console/pages/{entity}/update [POST]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	raw, err := h.processRecordBody(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	ok, err := p.SubmitUpdateJSON(ctx, raw)
	if err != nil && !ok {
		h.l.Warnf(ctx, "page.SubmitUpdate %s: %v", c.Param("entity"), err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newMutationResp(sess, p, ok))
}

// RequestRemoval godoc
// @Summary     Ask to delete rows
// @Description Returns a confirmation for the given ids, or for the selection. Nothing is deleted until it is confirmed.
// @Tags        Console
// @Accept      json
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       body body removalReq true "Ids, or selection=true"
// @Success     200 {object} confirmationResp
// @Failure     400 {object} response.Resp "Nothing selected"
// @Router      /api/v1/console/pages/{entity}/removals [POST]
func (h *handler) RequestRemoval(c *gin.Context) {
	_, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	req, err := h.processRemovalReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	var conf console.Confirmation
	if req.Selection {
		conf, err = p.RequestBatchRemove()
	} else {
		conf, err = p.RequestRemove(req.IDs)
	}
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, confirmationResp{Confirmation: conf})
}

// ConfirmRemoval godoc
// @Summary     Confirm a delete
// @Description Runs the delete behind the token. A failed delete stays pending.
// @Tags        Console
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       token path string true "Confirmation token"
// @Success     200 {object} mutationResp
// @Failure     404 {object} response.Resp "Unknown confirmation"
// @Router      /api/v1/console/pages/{entity}/removals/{token}/confirm [POST]
func (h *handler) ConfirmRemoval(c *gin.Context) {
	ctx := c.Request.Context()

	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	ok, err := p.Confirm(ctx, c.Param("token"))
	if err != nil && !ok {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newMutationResp(sess, p, ok))
}

// CancelRemoval godoc
// @Summary     Cancel a delete
// @Tags        Console
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Param       token path string true "Confirmation token"
// @Success     200 {object} pageResp
// @Failure     404 {object} response.Resp "Unknown confirmation"
// @Router      /api/v1/console/pages/{entity}/removals/{token} [DELETE]
func (h *handler) CancelRemoval(c *gin.Context) {
	sess, p, err := h.processPage(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := p.Cancel(c.Param("token")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newPageResp(sess, p))
}

// Notices godoc
// @Summary     Live notices
// @Description Returns the session's loading, success and error notices that have not expired yet.
// @Tags        Console
// @Produce     json
// @Param       X-Console-Session header string true "Session id"
// @Param       entity path string true "Entity name"
// @Success     200 {object} noticesResp
// @Router      /api/v1/console/pages/{entity}/notices [GET]
func (h *handler) Notices(c *gin.Context) {
	sess := c.MustGet(sessionKey).(*session)
	response.OK(c, noticesResp{Notices: sess.feed.Active()})
}
