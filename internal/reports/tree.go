// Package reports computes per-user financial summaries on demand: budget
// coverage, budget-vs-spend rollups, trailing timelines and per-category
// breakdowns. Every function takes the unit of work as an explicit
// *gorm.DB; the caller decides about transactions.
package reports

import (
	"strings"

	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Tree is an arena of expense category nodes keyed by ID. Categories can
// nest arbitrarily deep in storage, but rollups only ever aggregate a
// top-level category with its direct children; grandchildren are not
// included.
type Tree struct {
	nodes map[uuid.UUID]*node
	roots []*node
}

type node struct {
	category models.ExpenseCategory
	children []*node
}

// NewTree builds the category arena from a flat category list. Children
// are resolved by parent ID lookup; a child whose parent is not part of
// the list is treated as top-level.
func NewTree(categories []models.ExpenseCategory) *Tree {
	tree := &Tree{
		nodes: make(map[uuid.UUID]*node, len(categories)),
	}

	for _, category := range categories {
		tree.nodes[category.ID] = &node{category: category}
	}

	for _, n := range tree.nodes {
		parentID := n.category.ParentID
		if parentID == nil {
			tree.roots = append(tree.roots, n)
			continue
		}

		parent, ok := tree.nodes[*parentID]
		if !ok {
			tree.roots = append(tree.roots, n)
			continue
		}

		parent.children = append(parent.children, n)
	}

	slices.SortFunc(tree.roots, func(a, b *node) int {
		return strings.Compare(a.category.Name, b.category.Name)
	})

	return tree
}

// Roots returns the top-level categories, sorted by name.
func (t *Tree) Roots() []models.ExpenseCategory {
	roots := make([]models.ExpenseCategory, 0, len(t.roots))
	for _, n := range t.roots {
		roots = append(roots, n.category)
	}

	return roots
}

// RollupSet returns the IDs whose expenses roll up into the given
// category: the category itself plus its direct children.
func (t *Tree) RollupSet(id uuid.UUID) []uuid.UUID {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(n.children)+1)
	ids = append(ids, n.category.ID)
	for _, child := range n.children {
		ids = append(ids, child.category.ID)
	}

	return ids
}
