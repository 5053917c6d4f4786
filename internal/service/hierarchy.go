package service

import (
	"context"
	"errors"
	"fmt"

	"jhris/internal/repository"
)

// parentFunc returns the parent id of a node, or nil at a root.
type parentFunc func(ctx context.Context, id uint) (*uint, error)

// wouldCreateCycle walks the parent chain upward from newParentID and reports
// whether it reaches id. A chain that already loops without passing id, or
// that hits a missing row, ends the walk.
func wouldCreateCycle(ctx context.Context, id, newParentID uint, parentOf parentFunc) (bool, error) {
	visited := make(map[uint]struct{})
	current := &newParentID
	for current != nil {
		if *current == id {
			return true, nil
		}
		if _, seen := visited[*current]; seen {
			return false, nil
		}
		visited[*current] = struct{}{}

		parent, err := parentOf(ctx, *current)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("load parent chain: %w", err)
		}
		current = parent
	}
	return false, nil
}
