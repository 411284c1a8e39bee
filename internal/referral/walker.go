// Package referral enumerates the binary downline tree of a user.
package referral

import (
	"context"
	"sort"

	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// DefaultMaxLevel bounds how deep the downline enumeration goes.
const DefaultMaxLevel = 4

// Directory is the read surface the walker needs from the user store.
// Downline returns the direct referrals of buyerID on one binary side.
// Find returns (nil, nil) when the user no longer exists; a user deleted
// between discovery and lookup contributes an empty subtree.
type Directory interface {
	Downline(ctx context.Context, buyerID uint, side string) ([]models.User, error)
	Find(ctx context.Context, id uint) (*models.User, error)
}

// Entry is one discovered downline member.
type Entry struct {
	UserID         uint   `json:"id"`
	Name           string `json:"name"`
	Level          int    `json:"level"`
	Side           string `json:"side"`
	ProfilePicture string `json:"profile_picture"`
	BuyerID        uint   `json:"buyer_id"`
}

type Walker struct {
	dir      Directory
	maxLevel int
}

func NewWalker(dir Directory) *Walker {
	return &Walker{dir: dir, maxLevel: DefaultMaxLevel}
}

func NewWalkerWithDepth(dir Directory, maxLevel int) *Walker {
	return &Walker{dir: dir, maxLevel: maxLevel}
}

type frame struct {
	userID uint
	level  int
	// side inherited from the level-1 ancestor; empty at the root so
	// direct children keep their own placement side.
	side string
}

// Walk enumerates the downline of rootID up to the configured depth.
//
// Children are discovered left group first, then right, per node, one
// query pair per visited node. A child's side is the inherited ancestor
// side when one is set, otherwise its own raw placement. The result is
// stably ordered by level ascending, ties keeping discovery order.
//
// The traversal is an explicit queue rather than call-stack recursion,
// and each user id is visited at most once.
func (w *Walker) Walk(ctx context.Context, rootID uint) ([]Entry, error) {
	entries := []Entry{}

	queue := []frame{{userID: rootID, level: 1, side: ""}}
	visited := map[uint]bool{rootID: true}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		if f.level > w.maxLevel {
			continue
		}

		for _, side := range []string{models.SideLeft, models.SideRight} {
			children, err := w.dir.Downline(ctx, f.userID, side)
			if err != nil {
				return nil, err
			}

			for _, child := range children {
				childSide := f.side
				if childSide == "" {
					childSide = side
				}

				entries = append(entries, Entry{
					UserID:         child.ID,
					Name:           child.Name,
					Level:          f.level,
					Side:           childSide,
					ProfilePicture: child.ProfilePicture,
					BuyerID:        f.userID,
				})

				if !visited[child.ID] {
					visited[child.ID] = true
					queue = append(queue, frame{userID: child.ID, level: f.level + 1, side: childSide})
				}
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Level < entries[j].Level
	})

	return entries, nil
}

// MaxLevel returns the deepest level present in entries, 0 when empty.
func MaxLevel(entries []Entry) int {
	max := 0
	for _, e := range entries {
		if e.Level > max {
			max = e.Level
		}
	}
	return max
}
