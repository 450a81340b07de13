// Package refdata memoizes the forum's low-churn lookup lists: post
// categories, departments and hot tags. Each list is fetched at most once
// per store lifetime; staleness is accepted in exchange for fewer requests.
package refdata

import (
	"context"
	"sync"

	"github.com/lakeforum/lakecli/internal/client/models"
	"github.com/lakeforum/lakecli/internal/logging"
)

// postsAPI is the slice of the posts service the store needs.
type postsAPI interface {
	Types(ctx context.Context) (*models.PostTypeList, error)
	Departments(ctx context.Context) (*models.DepartmentList, error)
	HotTags(ctx context.Context) (*models.TagList, error)
}

// Store caches reference data. A list is either empty (not yet fetched, or
// the fetch failed) or fully populated from the last successful fetch; a
// failed fetch stays empty and the next access tries again. Fetch failures
// are logged, never returned: reference data is best effort.
type Store struct {
	posts postsAPI
	log   logging.Logger

	mu          sync.Mutex
	postTypes   []models.PostType
	departments []models.Department
	hotTags     []models.Tag
}

func New(posts postsAPI, log logging.Logger) *Store {
	return &Store{posts: posts, log: log}
}

// PostTypes returns the post categories, fetching them on first use.
func (s *Store) PostTypes(ctx context.Context) []models.PostType {
	s.mu.Lock()
	if len(s.postTypes) > 0 {
		defer s.mu.Unlock()
		return s.postTypes
	}
	s.mu.Unlock()

	list, err := s.posts.Types(ctx)
	if err != nil {
		s.log.Warn(ctx, "获取分类失败", "err", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.postTypes = list.List
	return s.postTypes
}

// Departments returns the department list, fetching it on first use.
func (s *Store) Departments(ctx context.Context) []models.Department {
	s.mu.Lock()
	if len(s.departments) > 0 {
		defer s.mu.Unlock()
		return s.departments
	}
	s.mu.Unlock()

	list, err := s.posts.Departments(ctx)
	if err != nil {
		s.log.Warn(ctx, "获取部门失败", "err", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments = list.List
	return s.departments
}

// HotTags returns the hot tag list, fetching it on first use.
func (s *Store) HotTags(ctx context.Context) []models.Tag {
	s.mu.Lock()
	if len(s.hotTags) > 0 {
		defer s.mu.Unlock()
		return s.hotTags
	}
	s.mu.Unlock()

	list, err := s.posts.HotTags(ctx)
	if err != nil {
		s.log.Warn(ctx, "获取热门标签失败", "err", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotTags = list.List
	return s.hotTags
}
