// service.go
//
// A reusable software component catalog service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-catalog.
// jam-build-catalog is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-catalog is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-catalog.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/localnerve/jam-build-catalog/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Service runs catalog operations against a Store: every mutation is validated and
// checked against the access policy before it is dispatched.
type Service struct {
	store  Store
	ledger *Ledger
	log    *logger.Logger
	now    func() time.Time
}

// StoreWithCounters is a Store that also applies counter increments.
type StoreWithCounters interface {
	Store
	CounterStore
}

// NewService creates a catalog service. A nil log discards output.
func NewService(store StoreWithCounters, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:  store,
		ledger: NewLedger(store),
		log:    log,
		now:    time.Now,
	}
}

// Snapshot is the full catalog as loaded in one pass.
type Snapshot struct {
	Components []Component
	Categories []Category
}

// CategoryView is a category with its parent name resolved for display.
type CategoryView struct {
	Category
	ParentName string
}

// Snapshot loads all components and categories concurrently.
func (s *Service) Snapshot(ctx context.Context, p *Principal) (Snapshot, error) {
	if err := requirePrincipal(p, "read the catalog"); err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		components, err := s.store.ListComponents(gctx)
		if err != nil {
			return storeError("list components", err)
		}
		snap.Components = components
		return nil
	})
	g.Go(func() error {
		categories, err := s.store.ListCategories(gctx)
		if err != nil {
			return storeError("list categories", err)
		}
		snap.Categories = categories
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Error("catalog snapshot failed", "error", err)
		return Snapshot{}, err
	}
	return snap, nil
}

// Search filters the catalog by query text and optional category scope.
func (s *Service) Search(ctx context.Context, p *Principal, queryText, scope string) ([]Component, error) {
	components, err := s.listComponents(ctx, p)
	if err != nil {
		return nil, err
	}
	return Filter(components, queryText, scope), nil
}

// ComponentTree builds the navigation tree from the component category fields.
func (s *Service) ComponentTree(ctx context.Context, p *Principal) (Tree, error) {
	components, err := s.listComponents(ctx, p)
	if err != nil {
		return nil, err
	}
	return BuildTree(components), nil
}

// CategoryHierarchy builds the stored category taxonomy.
func (s *Service) CategoryHierarchy(ctx context.Context, p *Principal) (Hierarchy, error) {
	categories, err := s.listCategories(ctx, p)
	if err != nil {
		return Hierarchy{}, err
	}
	h := BuildHierarchy(categories)
	for _, excluded := range h.Excluded {
		s.log.Warn("category excluded from hierarchy", "error", excluded)
	}
	return h, nil
}

// ListCategories returns all categories ordered by name with parent names resolved.
func (s *Service) ListCategories(ctx context.Context, p *Principal) ([]CategoryView, error) {
	categories, err := s.listCategories(ctx, p)
	if err != nil {
		return nil, err
	}
	SortCategories(categories)

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{Category: c, ParentName: names[c.ParentID]})
	}
	return views, nil
}

// GetComponent returns one component.
func (s *Service) GetComponent(ctx context.Context, p *Principal, id string) (Component, error) {
	if err := requirePrincipal(p, "read the catalog"); err != nil {
		return Component{}, err
	}
	c, err := s.store.GetComponent(ctx, id)
	if err != nil {
		return Component{}, storeError("get component", err)
	}
	return c, nil
}

// CreateComponent adds a component owned by p. Counters start at zero.
func (s *Service) CreateComponent(ctx context.Context, p *Principal, c Component) (Component, error) {
	if err := requirePrincipal(p, "create components"); err != nil {
		return Component{}, err
	}

	c = Normalize(c)
	c.ID = ""
	c.CreatedBy = p.ID
	c.Timestamp = s.now().UTC()
	c.UsageCount, c.QueryCount, c.LastUsed = 0, 0, nil
	if err := Validate(c); err != nil {
		return Component{}, err
	}

	created, err := s.store.CreateComponent(ctx, c)
	if err != nil {
		s.log.Error("create component failed", "name", c.Name, "error", err)
		return Component{}, storeError("create component", err)
	}
	s.log.Info("component created", "id", created.ID, "principal", p.ID)
	return created, nil
}

// UpdateComponent replaces the editable fields of the component with c.ID.
// Identity, ownership, creation time and counters are kept from the stored copy.
// A blank version or status keeps the stored value.
func (s *Service) UpdateComponent(ctx context.Context, p *Principal, c Component) (Component, error) {
	c = normalizeFields(c)
	if err := Validate(Normalize(c)); err != nil {
		return Component{}, err
	}

	existing, err := s.authorizeComponent(ctx, p, c.ID, "update")
	if err != nil {
		return Component{}, err
	}

	if c.Version == "" {
		c.Version = existing.Version
	}
	if c.Status == "" {
		c.Status = existing.Status
	}
	c.CreatedBy = existing.CreatedBy
	c.Timestamp = existing.Timestamp
	c.UsageCount = existing.UsageCount
	c.QueryCount = existing.QueryCount
	c.LastUsed = existing.LastUsed

	updated, err := s.store.UpdateComponent(ctx, c)
	if err != nil {
		s.log.Error("update component failed", "id", c.ID, "error", err)
		return Component{}, storeError("update component", err)
	}
	return updated, nil
}

// DeleteComponent hard-deletes a component.
func (s *Service) DeleteComponent(ctx context.Context, p *Principal, id string) error {
	if _, err := s.authorizeComponent(ctx, p, id, "delete"); err != nil {
		return err
	}
	if err := s.store.DeleteComponent(ctx, id); err != nil {
		s.log.Error("delete component failed", "id", id, "error", err)
		return storeError("delete component", err)
	}
	s.log.Info("component deleted", "id", id, "principal", p.ID)
	return nil
}

// UseComponent records a use of the component. A non-blank activeQuery marks the
// use as found through search.
func (s *Service) UseComponent(ctx context.Context, p *Principal, id, activeQuery string) (Counters, error) {
	component, err := s.GetComponent(ctx, p, id)
	if err != nil {
		return Counters{}, err
	}

	hadActiveQuery := HasQuery(activeQuery)
	counters, err := s.ledger.RecordUse(ctx, component, hadActiveQuery)
	if err != nil {
		s.log.Error("record use failed", "id", id, "error", err)
		return Counters{}, err
	}
	s.log.Debug("component used", "id", id, "search", hadActiveQuery, "usageCount", counters.UsageCount)
	return counters, nil
}

// CreateCategory adds a category owned by p. A parent, when given, must exist.
func (s *Service) CreateCategory(ctx context.Context, p *Principal, c Category) (Category, error) {
	if err := requirePrincipal(p, "create categories"); err != nil {
		return Category{}, err
	}

	c.ID = ""
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if err := ValidateCategory(c); err != nil {
		return Category{}, err
	}
	if err := s.checkParent(ctx, c.ParentID); err != nil {
		return Category{}, err
	}

	c.CreatedBy = p.ID
	c.CreatedAt = s.now().UTC()
	created, err := s.store.CreateCategory(ctx, c)
	if err != nil {
		s.log.Error("create category failed", "name", c.Name, "error", err)
		return Category{}, storeError("create category", err)
	}
	return created, nil
}

// UpdateCategory changes name, description and parent of a category. A parent
// change that would loop the taxonomy is refused with a *CycleDetectedError.
func (s *Service) UpdateCategory(ctx context.Context, p *Principal, c Category) (Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if err := ValidateCategory(c); err != nil {
		return Category{}, err
	}

	existing, err := s.authorizeCategory(ctx, p, c.ID, "update")
	if err != nil {
		return Category{}, err
	}
	if err := s.checkParent(ctx, c.ParentID); err != nil {
		return Category{}, err
	}
	if c.ParentID != "" && c.ParentID != existing.ParentID {
		all, err := s.store.ListCategories(ctx)
		if err != nil {
			return Category{}, storeError("list categories", err)
		}
		if err := DetectCycle(all, c.ID, c.ParentID); err != nil {
			return Category{}, err
		}
	}

	c.CreatedBy = existing.CreatedBy
	c.CreatedAt = existing.CreatedAt
	updated, err := s.store.UpdateCategory(ctx, c)
	if err != nil {
		return Category{}, storeError("update category", err)
	}
	return updated, nil
}

// DeleteCategory hard-deletes one category. Children are left in place.
func (s *Service) DeleteCategory(ctx context.Context, p *Principal, id string) error {
	if _, err := s.authorizeCategory(ctx, p, id, "delete"); err != nil {
		return err
	}
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return storeError("delete category", err)
	}
	return nil
}

func (s *Service) listComponents(ctx context.Context, p *Principal) ([]Component, error) {
	if err := requirePrincipal(p, "read the catalog"); err != nil {
		return nil, err
	}
	components, err := s.store.ListComponents(ctx)
	if err != nil {
		return nil, storeError("list components", err)
	}
	return components, nil
}

func (s *Service) listCategories(ctx context.Context, p *Principal) ([]Category, error) {
	if err := requirePrincipal(p, "read the catalog"); err != nil {
		return nil, err
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storeError("list categories", err)
	}
	return categories, nil
}

func (s *Service) authorizeComponent(ctx context.Context, p *Principal, id, action string) (Component, error) {
	if err := requirePrincipal(p, action+" components"); err != nil {
		return Component{}, err
	}
	existing, err := s.store.GetComponent(ctx, id)
	if err != nil {
		return Component{}, storeError("get component", err)
	}
	if !CanMutate(p, existing) {
		return Component{}, &AccessDeniedError{PrincipalID: p.ID, Action: action, ResourceID: id}
	}
	return existing, nil
}

func (s *Service) authorizeCategory(ctx context.Context, p *Principal, id, action string) (Category, error) {
	if err := requirePrincipal(p, action+" categories"); err != nil {
		return Category{}, err
	}
	existing, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return Category{}, storeError("get category", err)
	}
	if !CanMutateCategory(p, existing) {
		return Category{}, &AccessDeniedError{PrincipalID: p.ID, Action: action, ResourceID: id}
	}
	return existing, nil
}

func (s *Service) checkParent(ctx context.Context, parentID string) error {
	if parentID == "" {
		return nil
	}
	if _, err := s.store.GetCategory(ctx, parentID); err != nil {
		if IsNotFound(err) {
			return &ValidationError{Field: "parent_id", Message: "parent category " + parentID + " does not exist"}
		}
		return storeError("get category", err)
	}
	return nil
}

func requirePrincipal(p *Principal, action string) error {
	if p == nil {
		return &AccessDeniedError{Action: action}
	}
	return nil
}
