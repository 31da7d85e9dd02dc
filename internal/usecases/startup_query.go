package usecases

import (
	"context"
	"errors"
	"sort"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/domain/repositories"
	"github.com/google/uuid"
)

// aggregateLoader assembles StartupAggregates with one query per child
// table regardless of how many startups are loaded
type aggregateLoader struct {
	positionRepo    repositories.PositionRepository
	applicationRepo repositories.ApplicationRepository
	reactionRepo    repositories.ReactionRepository
	commentRepo     repositories.CommentRepository
	userRepo        repositories.UserRepository
}

func (l *aggregateLoader) load(ctx context.Context, startups []*entities.Startup) ([]*entities.StartupAggregate, error) {
	aggregates := make([]*entities.StartupAggregate, 0, len(startups))
	if len(startups) == 0 {
		return aggregates, nil
	}

	startupIDs := make([]uuid.UUID, 0, len(startups))
	for _, s := range startups {
		startupIDs = append(startupIDs, s.ID)
	}

	positions, err := l.positionRepo.ListByStartupIDs(ctx, startupIDs)
	if err != nil {
		return nil, err
	}
	positionIDs := make([]uuid.UUID, 0, len(positions))
	for _, p := range positions {
		positionIDs = append(positionIDs, p.ID)
	}
	applications, err := l.applicationRepo.ListByPositionIDs(ctx, positionIDs)
	if err != nil {
		return nil, err
	}
	likes, err := l.reactionRepo.ListByStartupIDs(ctx, entities.ReactionLike, startupIDs)
	if err != nil {
		return nil, err
	}
	dislikes, err := l.reactionRepo.ListByStartupIDs(ctx, entities.ReactionDislike, startupIDs)
	if err != nil {
		return nil, err
	}
	comments, err := l.commentRepo.ListByStartupIDs(ctx, startupIDs)
	if err != nil {
		return nil, err
	}

	userIDs := make(map[uuid.UUID]struct{})
	for _, s := range startups {
		userIDs[s.FounderID] = struct{}{}
	}
	for _, c := range comments {
		userIDs[c.UserID] = struct{}{}
	}
	users, err := l.summaries(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	appsByPosition := make(map[uuid.UUID][]*entities.Application)
	for _, a := range applications {
		appsByPosition[a.PositionID] = append(appsByPosition[a.PositionID], a)
	}
	positionsByStartup := make(map[uuid.UUID][]*entities.Position)
	for _, p := range positions {
		p.Applications = appsByPosition[p.ID]
		if p.Applications == nil {
			p.Applications = []*entities.Application{}
		}
		positionsByStartup[p.StartupID] = append(positionsByStartup[p.StartupID], p)
	}
	likesByStartup := groupReactions(likes)
	dislikesByStartup := groupReactions(dislikes)
	commentsByStartup := make(map[uuid.UUID][]*entities.Comment)
	for _, c := range comments {
		commentsByStartup[c.StartupID] = append(commentsByStartup[c.StartupID], c)
	}

	for _, s := range startups {
		agg := &entities.StartupAggregate{
			Startup:   *s,
			Founder:   users[s.FounderID],
			Positions: nonNilSlice(positionsByStartup[s.ID]),
			Likes:     nonNilSlice(likesByStartup[s.ID]),
			Dislikes:  nonNilSlice(dislikesByStartup[s.ID]),
			Comments:  buildCommentThreads(commentsByStartup[s.ID], users),
		}
		agg.LikeCount = len(agg.Likes)
		agg.DislikeCount = len(agg.Dislikes)
		aggregates = append(aggregates, agg)
	}
	return aggregates, nil
}

func (l *aggregateLoader) loadOne(ctx context.Context, startup *entities.Startup) (*entities.StartupAggregate, error) {
	aggs, err := l.load(ctx, []*entities.Startup{startup})
	if err != nil {
		return nil, err
	}
	return aggs[0], nil
}

func (l *aggregateLoader) summaries(ctx context.Context, ids map[uuid.UUID]struct{}) (map[uuid.UUID]*entities.UserSummary, error) {
	list := make([]uuid.UUID, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	users, err := l.userRepo.ListByIDs(ctx, list)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]*entities.UserSummary, len(users))
	for _, u := range users {
		out[u.ID] = u.Summary()
	}
	return out, nil
}

func groupReactions(reactions []*entities.Reaction) map[uuid.UUID][]*entities.Reaction {
	out := make(map[uuid.UUID][]*entities.Reaction)
	for _, r := range reactions {
		out[r.StartupID] = append(out[r.StartupID], r)
	}
	return out
}

// buildCommentThreads turns a flat list of one startup's comments into
// threads. Parents are referenced by id only: every comment becomes a node,
// nodes are grouped under their parent id, and nodes without a parent (or
// whose parent is not in the list) are the top level. Siblings are ordered
// newest first.
func buildCommentThreads(comments []*entities.Comment, authors map[uuid.UUID]*entities.UserSummary) []*entities.CommentThread {
	sorted := make([]*entities.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID.String() > sorted[j].ID.String()
	})

	nodes := make(map[uuid.UUID]*entities.CommentThread, len(sorted))
	for _, c := range sorted {
		nodes[c.ID] = &entities.CommentThread{
			Comment: *c,
			Author:  authors[c.UserID],
			Replies: []*entities.CommentThread{},
		}
	}

	roots := make([]*entities.CommentThread, 0)
	for _, c := range sorted {
		node := nodes[c.ID]
		if c.ParentID != nil {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func findStartup(ctx context.Context, repo repositories.StartupRepository, id uuid.UUID) (*entities.Startup, error) {
	startup, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("startup not found")
		}
		return nil, err
	}
	return startup, nil
}
