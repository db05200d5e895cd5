package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/mazeball/domain"
	"github.com/beka-birhanu/mazeball/layout"
	"github.com/beka-birhanu/mazeball/service/i"
	"github.com/google/uuid"
)

const (
	defaultCachePrefix  = "mazeball"
	defaultMaxDimension = 100
	layoutKeyFmt        = "%s:layout:%s:%g:%g:%g"
)

// DefaultLayoutParams is used for any layout size left at zero.
var DefaultLayoutParams = i.LayoutParams{
	UnitWidth:     100,
	UnitHeight:    100,
	WallThickness: 4,
}

var ErrNilDependency = errors.New("maze service: repository, cache and logger are required")

// MazeOptions configures a MazeService.
type MazeOptions struct {
	CachePrefix  string           // Prefix of every cache key
	MaxDimension int              // Largest accepted row or column count
	Now          func() time.Time // Clock for session timestamps
	NewSeed      func() int64     // Seed source when a spec has none
	NewID        func() uuid.UUID // Session ID source
}

// MazeService generates, persists and projects mazes.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.LayoutCache
	logger i.Logger
	opts   *MazeOptions
}

// NewMazeService creates a MazeService. A nil opts uses the defaults.
func NewMazeService(repo i.MazeRepo, cache i.LayoutCache, logger i.Logger, opts *MazeOptions) (*MazeService, error) {
	if repo == nil || cache == nil || logger == nil {
		return nil, ErrNilDependency
	}

	if opts == nil {
		opts = &MazeOptions{}
	}

	if opts.CachePrefix == "" {
		opts.CachePrefix = defaultCachePrefix
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.NewSeed == nil {
		opts.NewSeed = func() int64 { return rand.Int63() }
	}

	if opts.NewID == nil {
		opts.NewID = uuid.New
	}

	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Create generates a maze from spec and saves its session.
func (ms *MazeService) Create(ctx context.Context, spec dmn.MazeSpec) (*dmn.MazeSession, error) {
	if spec.Rows > ms.opts.MaxDimension || spec.Cols > ms.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", dmn.ErrMazeTooLarge, spec.Rows, spec.Cols, ms.opts.MaxDimension)
	}

	session := &dmn.MazeSession{
		ID:          ms.opts.NewID(),
		Rows:        spec.Rows,
		Cols:        spec.Cols,
		RandomStart: spec.Start == nil,
		CreatedAt:   ms.opts.Now().UTC(),
	}
	if spec.Seed != nil {
		session.Seed = *spec.Seed
	} else {
		session.Seed = ms.opts.NewSeed()
	}
	if spec.Start != nil {
		session.Start = *spec.Start
	}

	if _, err := session.Regenerate(); err != nil {
		return nil, err
	}

	if err := ms.repo.Save(ctx, session); err != nil {
		ms.logger.Error(fmt.Sprintf("Failed to save maze session: ID=%s err=%s", session.ID, err))
		return nil, err
	}

	ms.logger.Info(fmt.Sprintf("Maze created: ID=%s Size=%dx%d Seed=%d", session.ID, session.Rows, session.Cols, session.Seed))
	return session, nil
}

// Get loads a session by ID and regenerates its maze.
func (ms *MazeService) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeSession, error) {
	session, err := ms.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := session.Regenerate(); err != nil {
		ms.logger.Error(fmt.Sprintf("Stored maze session cannot be regenerated: ID=%s err=%s", id, err))
		return nil, err
	}
	return session, nil
}

// Layout projects the maze of session id. Zero sizes in params fall back to DefaultLayoutParams.
// Projections are cached; when the cache is unavailable the layout is projected directly.
func (ms *MazeService) Layout(ctx context.Context, id uuid.UUID, params i.LayoutParams) (*layout.Geometry, error) {
	params = withDefaults(params)
	if params.UnitWidth < 0 || params.UnitHeight < 0 || params.WallThickness < 0 {
		return nil, fmt.Errorf("%w: unit %gx%g, wall %g", layout.ErrInvalidUnit, params.UnitWidth, params.UnitHeight, params.WallThickness)
	}

	var geometry *layout.Geometry
	var fillErr error
	fill := func() ([]byte, error) {
		geometry, fillErr = ms.project(ctx, id, params)
		if fillErr != nil {
			return nil, fillErr
		}
		return json.Marshal(geometry)
	}

	key := fmt.Sprintf(layoutKeyFmt, ms.opts.CachePrefix, id, params.UnitWidth, params.UnitHeight, params.WallThickness)
	data, err := ms.cache.Fetch(ctx, key, fill)
	if fillErr != nil {
		return nil, fillErr
	}
	if err != nil {
		ms.logger.Warning(fmt.Sprintf("Layout cache unavailable, serving uncached layout: key=%s err=%s", key, err))
		if geometry != nil {
			return geometry, nil
		}
		return ms.project(ctx, id, params)
	}

	var cached layout.Geometry
	if err := json.Unmarshal(data, &cached); err != nil {
		ms.logger.Warning(fmt.Sprintf("Discarding malformed cached layout: key=%s err=%s", key, err))
		return ms.project(ctx, id, params)
	}
	return &cached, nil
}

func (ms *MazeService) project(ctx context.Context, id uuid.UUID, params i.LayoutParams) (*layout.Geometry, error) {
	session, err := ms.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return layout.Project(session.Maze, params.UnitWidth, params.UnitHeight, params.WallThickness)
}

func withDefaults(p i.LayoutParams) i.LayoutParams {
	if p.UnitWidth == 0 {
		p.UnitWidth = DefaultLayoutParams.UnitWidth
	}
	if p.UnitHeight == 0 {
		p.UnitHeight = DefaultLayoutParams.UnitHeight
	}
	if p.WallThickness == 0 {
		p.WallThickness = DefaultLayoutParams.WallThickness
	}
	return p
}
