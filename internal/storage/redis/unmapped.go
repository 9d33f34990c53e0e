package redis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"foodrisk/internal/domain"
)

var trackedKinds = []domain.MappingKind{domain.KindHazard, domain.KindCountry, domain.KindCategory}

// UnmappedStore counts raw values that fell through to a generic bucket. Each kind
// has a sorted set of occurrence counts and a hash of suggestions.
type UnmappedStore struct {
	rdb    redis.Cmdable
	prefix string
}

func NewUnmappedStore(rdb redis.Cmdable, prefix string) *UnmappedStore {
	return &UnmappedStore{rdb: rdb, prefix: prefix}
}

func (s *UnmappedStore) countsKey(kind domain.MappingKind) string {
	return s.prefix + ":unmapped:" + string(kind)
}

func (s *UnmappedStore) suggestionsKey(kind domain.MappingKind) string {
	return s.prefix + ":unmapped:" + string(kind) + ":suggestions"
}

func (s *UnmappedStore) Track(ctx context.Context, observations []domain.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, o := range observations {
			raw := strings.TrimSpace(o.RawValue)
			if raw == "" {
				continue
			}
			pipe.ZIncrBy(ctx, s.countsKey(o.Kind), 1, raw)
			if o.Suggestion != "" {
				pipe.HSet(ctx, s.suggestionsKey(o.Kind), raw, o.Suggestion)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("track unmapped values: %w", err)
	}
	return nil
}

// Top returns the most frequent unreviewed values. An empty kind merges all kinds.
func (s *UnmappedStore) Top(ctx context.Context, kind domain.MappingKind, limit int) ([]domain.UnmappedValue, error) {
	if limit <= 0 {
		return nil, nil
	}

	kinds := trackedKinds
	if kind != "" {
		kinds = []domain.MappingKind{kind}
	}

	var out []domain.UnmappedValue
	for _, k := range kinds {
		values, err := s.top(ctx, k, limit)
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Occurrences > out[j].Occurrences
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *UnmappedStore) top(ctx context.Context, kind domain.MappingKind, limit int) ([]domain.UnmappedValue, error) {
	members, err := s.rdb.ZRevRangeWithScores(ctx, s.countsKey(kind), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read unmapped %s values: %w", kind, err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	fields := make([]string, 0, len(members))
	for _, m := range members {
		fields = append(fields, fmt.Sprint(m.Member))
	}

	suggestions, err := s.rdb.HMGet(ctx, s.suggestionsKey(kind), fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s suggestions: %w", kind, err)
	}

	out := make([]domain.UnmappedValue, 0, len(members))
	for i, m := range members {
		v := domain.UnmappedValue{
			Kind:        kind,
			RawValue:    fields[i],
			Occurrences: int64(m.Score),
		}
		if sg, ok := suggestions[i].(string); ok {
			v.Suggestion = sg
		}
		out = append(out, v)
	}
	return out, nil
}

// MarkReviewed drops a value from the review queue once a mapping covers it.
func (s *UnmappedStore) MarkReviewed(ctx context.Context, kind domain.MappingKind, rawValue string) error {
	raw := strings.TrimSpace(rawValue)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, s.countsKey(kind), raw)
		pipe.HDel(ctx, s.suggestionsKey(kind), raw)
		return nil
	})
	if err != nil {
		return fmt.Errorf("mark %s value reviewed: %w", kind, err)
	}
	return nil
}
