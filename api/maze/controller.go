package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	dmn "github.com/beka-birhanu/mazeball/domain"
	"github.com/beka-birhanu/mazeball/layout"
	"github.com/beka-birhanu/mazeball/maze"
	"github.com/beka-birhanu/mazeball/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestTimeout = 5 * time.Second

// MazeController handles maze creation, lookup and projection requests.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller: nil maze service")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/layout", mc.layout)
		mazes.GET("/:ID/ascii", mc.ascii)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	session, err := mc.mazeService.Create(timeoutCtx, dmn.MazeSpec{
		Rows:  request.Rows,
		Cols:  request.Cols,
		Seed:  request.Seed,
		Start: request.Start,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(session))
}

// get retrieves a maze session with its walls.
func (mc *MazeController) get(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(session))
}

// ascii renders a maze session as text.
func (mc *MazeController) ascii(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, session.Maze.String())
}

// layout projects a maze session into play-field bodies.
func (mc *MazeController) layout(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	var query LayoutQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	geometry, err := mc.mazeService.Layout(timeoutCtx, ID, i.LayoutParams{
		UnitWidth:     query.UnitWidth,
		UnitHeight:    query.UnitHeight,
		WallThickness: query.WallThickness,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, geometry)
}

// session loads the session named by the ID path parameter, writing the error response on failure.
func (mc *MazeController) session(ctx *gin.Context) (*dmn.MazeSession, bool) {
	ID, ok := parseID(ctx)
	if !ok {
		return nil, false
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	session, err := mc.mazeService.Get(timeoutCtx, ID)
	if err != nil {
		writeError(ctx, err)
		return nil, false
	}
	return session, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return ID, true
}

// writeError responds with the status of err. Unexpected errors are not echoed to the client.
func writeError(ctx *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		ctx.JSON(status, gin.H{"error": "error while serving maze"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrInvalidStart),
		errors.Is(err, dmn.ErrMazeTooLarge),
		errors.Is(err, layout.ErrInvalidUnit),
		errors.Is(err, layout.ErrInvalidBallCell):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
