package documents

import (
	"context"
	"log"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
)

// Document is one required application document.
type Document struct {
	ID         string
	Name       string
	University string
	Category   string
	Notes      string
	Completed  bool
}

// Stats is the backend's completion summary.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// Update is a document mutation.
type Update struct {
	Completed bool
	Notes     string
}

// DocumentGateway reads and mutates documents on the backend.
type DocumentGateway interface {
	ListDocuments(ctx context.Context) ([]Document, error)
	LoadStats(ctx context.Context) (Stats, error)
	UpdateDocument(ctx context.Context, documentID string, update Update) error
}

// Category groups documents sharing a category. An empty Name is the
// general bucket.
type Category struct {
	Name      string
	Documents []Document
}

// Group holds one university's categories. An empty University is the
// general bucket.
type Group struct {
	University string
	Categories []Category
}

// checklist is the documents page data.
type checklist struct {
	Groups   []Group
	Stats    Stats
	Degraded bool
}

const maxNotesLength = 2000

type service struct {
	gateway DocumentGateway
}

func newService(gateway DocumentGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// loadChecklist fetches documents and stats concurrently. Stats fall back to
// counts over the list when only the stats call fails.
func (s service) loadChecklist(ctx context.Context) (checklist, error) {
	var (
		items    []Document
		stats    Stats
		listErr  error
		statsErr error
	)
	// A failed list still leaves stats worth showing and the reverse, so
	// neither fetch cancels the other.
	var g errgroup.Group
	g.Go(func() error {
		items, listErr = s.gateway.ListDocuments(ctx)
		return nil
	})
	g.Go(func() error {
		stats, statsErr = s.gateway.LoadStats(ctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil && httpx.ClientGone(ctx, err) {
		return checklist{}, err
	}
	var result checklist
	if listErr != nil {
		log.Printf("web: documents list unavailable err=%v", listErr)
		result.Degraded = true
		items = nil
	}
	result.Groups = groupDocuments(items)
	switch {
	case statsErr == nil:
		result.Stats = stats
	case listErr == nil:
		log.Printf("web: documents stats unavailable err=%v", statsErr)
		result.Stats = countDocuments(items)
	}
	return result, nil
}

func (s service) updateDocument(ctx context.Context, documentID string, completed string, notes string) error {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "document id is required")
	}
	done, err := strconv.ParseBool(strings.TrimSpace(completed))
	if err != nil {
		return apperrors.E(apperrors.KindInvalidInput, "completed must be true or false")
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLength {
		return apperrors.E(apperrors.KindInvalidInput, "notes are too long")
	}
	return s.gateway.UpdateDocument(ctx, documentID, Update{Completed: done, Notes: notes})
}

// groupDocuments groups by university, then category, keeping the order in
// which each appears.
func groupDocuments(items []Document) []Group {
	var groups []Group
	groupIndex := map[string]int{}
	categoryIndex := map[[2]string]int{}
	for _, item := range items {
		university := strings.TrimSpace(item.University)
		category := strings.TrimSpace(item.Category)
		gi, ok := groupIndex[university]
		if !ok {
			gi = len(groups)
			groupIndex[university] = gi
			groups = append(groups, Group{University: university})
		}
		key := [2]string{university, category}
		ci, ok := categoryIndex[key]
		if !ok {
			ci = len(groups[gi].Categories)
			categoryIndex[key] = ci
			groups[gi].Categories = append(groups[gi].Categories, Category{Name: category})
		}
		groups[gi].Categories[ci].Documents = append(groups[gi].Categories[ci].Documents, item)
	}
	return groups
}

func countDocuments(items []Document) Stats {
	stats := Stats{Total: len(items)}
	for _, item := range items {
		if item.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
