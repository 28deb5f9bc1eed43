package carpool

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	core "github.com/xinyujieHong/CSEN174-Project/internal/carpool"
	"github.com/xinyujieHong/CSEN174-Project/internal/db"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/repository"
	"github.com/xinyujieHong/CSEN174-Project/internal/validate"
)

// Service implements the carpool request feed: posting, editing,
// responding and the enriched read-side listing.
type Service struct {
	appCtx   *app.AppContext
	requests *repository.CarpoolRepository
	dir      *repository.Directory
}

// NewService creates the carpool service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		requests: repository.NewCarpoolRepository(appCtx.DB),
		dir:      repository.NewDirectory(appCtx.DB),
	}
}

// PostInput carries a candidate post as submitted by the form.
type PostInput struct {
	Type        string  `json:"type"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Seats       float64 `json:"seats"`
	Notes       string  `json:"notes"`
}

// RequestView is a display-ready post: reconciled responses, poster
// name and urgency flags resolved.
type RequestView struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	UserName      string              `json:"userName"`
	Type          string              `json:"type"`
	Destination   string              `json:"destination"`
	Date          string              `json:"date"`
	Time          string              `json:"time"`
	Seats         int                 `json:"seats"`
	Notes         string              `json:"notes"`
	Responses     []core.ResponseView `json:"responses"`
	ResponseCount int64               `json:"responseCount"`
	Urgent        bool                `json:"urgent"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// Create validates and stores a new post.
//
// The composite validator is the single gate: destination, future
// date, time format, passenger count and type must all pass.
func (s *Service) Create(ctx context.Context, userID string, in PostInput) (*db.CarpoolRequest, error) {
	fields := validate.RequestFields{
		Destination: in.Destination,
		Date:        in.Date,
		Time:        in.Time,
		Passengers:  in.Seats,
		Type:        in.Type,
	}
	if !validate.IsValidCarpoolRequest(fields) {
		return nil, svcErr.InvalidArgument("invalid carpool request")
	}
	if !validate.IsValidNotes(in.Notes, 0) {
		return nil, svcErr.InvalidArgument("notes are too long")
	}

	request := db.CarpoolRequest{
		ID:          uuid.NewString(),
		UserID:      userID,
		UserName:    core.PosterName(ctx, s.dir, userID),
		Type:        in.Type,
		Destination: validate.SanitizeInput(in.Destination, 200),
		Date:        in.Date,
		Time:        in.Time,
		Seats:       int(in.Seats),
		Notes:       in.Notes,
		Responses:   db.ResponseList{},
	}
	if err := s.requests.Create(ctx, &request); err != nil {
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("carpool request created", "request", request.ID, "type", request.Type)
	return &request, nil
}

// List returns all posts newest first, each enriched through the
// response reconciler and flagged for urgency.
//
// Response counts are served cache-first: Redis holds a per-request
// counter maintained by Respond; on a miss the reconciled length is
// written back with a TTL.
func (s *Service) List(ctx context.Context) ([]RequestView, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	views := make([]RequestView, 0, len(requests))
	for i := range requests {
		views = append(views, s.view(ctx, &requests[i]))
	}
	return views, nil
}

// Get returns one enriched post.
func (s *Service) Get(ctx context.Context, requestID string) (*RequestView, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	v := s.view(ctx, request)
	return &v, nil
}

// Update applies owner edits to a post after revalidation.
func (s *Service) Update(ctx context.Context, requestID, userID string, in PostInput) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return svcErr.Map(err)
	}
	if request.UserID != userID {
		return svcErr.Forbidden("cannot update another user's request")
	}

	fields := validate.RequestFields{
		Destination: in.Destination,
		Date:        in.Date,
		Time:        in.Time,
		Passengers:  in.Seats,
		Type:        in.Type,
	}
	if !validate.IsValidCarpoolRequest(fields) {
		return svcErr.InvalidArgument("invalid carpool request")
	}
	if !validate.IsValidNotes(in.Notes, 0) {
		return svcErr.InvalidArgument("notes are too long")
	}

	request.Type = in.Type
	request.Destination = validate.SanitizeInput(in.Destination, 200)
	request.Date = in.Date
	request.Time = in.Time
	request.Seats = int(in.Seats)
	request.Notes = in.Notes

	return svcErr.Map(s.requests.Update(ctx, request))
}

// Respond appends one canonical-shape response and bumps the cached
// counter. Duplicate responses from the same user are allowed.
func (s *Service) Respond(ctx context.Context, requestID, userID, message string) (*db.Response, error) {
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return nil, svcErr.Map(err)
	}

	content := validate.SanitizeMessageContent(message)
	if content == "" {
		content = core.DefaultResponseMessage
	}

	response := db.Response{
		UserID:    userID,
		Message:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.requests.AppendResponse(ctx, requestID, response); err != nil {
		return nil, svcErr.Map(err)
	}

	_, _ = s.appCtx.RedisCache.IncrResponseCount(ctx, requestID)

	s.appCtx.Logger.Debug("carpool response added", "request", requestID, "responder", userID)
	return &response, nil
}

// SyncResponseCounts rewrites every cached response counter from the
// stored responses. Run periodically, it heals counters that expired
// or drifted between increments.
func (s *Service) SyncResponseCounts(ctx context.Context) error {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return svcErr.Map(err)
	}
	for i := range requests {
		count := int64(len(requests[i].Responses))
		if err := s.appCtx.RedisCache.UpdateResponseCount(ctx, requests[i].ID, count); err != nil {
			return svcErr.Map(err)
		}
	}
	return nil
}

// Delete removes an owner's post and drops its cached counter.
func (s *Service) Delete(ctx context.Context, requestID, userID string) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return svcErr.Map(err)
	}
	if request.UserID != userID {
		return svcErr.Forbidden("cannot delete another user's request")
	}

	if err := s.requests.Delete(ctx, requestID); err != nil {
		return svcErr.Map(err)
	}
	_ = s.appCtx.RedisCache.Del(ctx, s.appCtx.RedisCache.KeyForResponseCount(requestID))
	return nil
}

func (s *Service) view(ctx context.Context, request *db.CarpoolRequest) RequestView {
	responses := core.Reconcile(ctx, request.Responses, s.dir)

	count, found, err := s.appCtx.RedisCache.GetResponseCount(ctx, request.ID)
	if err != nil || !found {
		count = int64(len(responses))
		_ = s.appCtx.RedisCache.UpdateResponseCount(ctx, request.ID, count)
	}

	name := request.UserName
	if name == "" {
		name = core.PosterName(ctx, s.dir, request.UserID)
	}

	return RequestView{
		ID:            request.ID,
		UserID:        request.UserID,
		UserName:      name,
		Type:          request.Type,
		Destination:   request.Destination,
		Date:          request.Date,
		Time:          request.Time,
		Seats:         request.Seats,
		Notes:         request.Notes,
		Responses:     responses,
		ResponseCount: count,
		Urgent:        validate.IsUrgentRequest(request.Date),
		CreatedAt:     request.CreatedAt,
		UpdatedAt:     request.UpdatedAt,
	}
}
