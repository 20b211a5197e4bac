package aggregate

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

// DefaultLimit caps how many posts one aggregation run returns.
const DefaultLimit = 150

// maxWorkers bounds concurrent source fetches.
const maxWorkers = 10

// Dispatcher fetches all posts for one source.
type Dispatcher interface {
	Dispatch(ctx context.Context, src feeds.Source) ([]feeds.Post, error)
}

// Aggregator runs the full fan-out/fan-in pipeline over a source list.
type Aggregator struct {
	dispatch Dispatcher
	limit    int
	logger   *log.Logger
}

// New creates an Aggregator. A non-positive limit falls back to
// DefaultLimit; a nil logger discards.
func New(d Dispatcher, limit int, logger *log.Logger) *Aggregator {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Aggregator{dispatch: d, limit: limit, logger: logger}
}

// Run fetches every source concurrently and merges the results. One
// source failing records an error string and never disturbs the others;
// Run itself cannot fail. It blocks until every source has completed.
func (a *Aggregator) Run(ctx context.Context, sources []feeds.Source) feeds.Result {
	if len(sources) == 0 {
		return feeds.Result{Posts: []feeds.Post{}, Companies: []string{}, Errors: []string{}}
	}

	var (
		mu     sync.Mutex
		posts  []feeds.Post
		errs   []string
	)

	var g errgroup.Group
	g.SetLimit(min(maxWorkers, len(sources)))

	for _, src := range sources {
		src := src
		g.Go(func() error {
			// A panicking parser is contained like any other
			// per-source failure.
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					errs = append(errs, fmt.Sprintf("%s: panic: %v", src.Company, r))
					mu.Unlock()
					a.logger.Error("source panicked", "company", src.Company, "panic", r)
				}
			}()

			got, err := a.dispatch.Dispatch(ctx, src)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", src.Company, err))
				a.logger.Warn("source failed", "company", src.Company, "err", err)
				return nil
			}
			posts = append(posts, got...)
			a.logger.Debug("source fetched", "company", src.Company, "posts", len(got))
			return nil
		})
	}
	_ = g.Wait() // workers never fail the group

	// Newest first; ties keep arrival order.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Published.After(posts[j].Published)
	})

	// Companies reflect every fetched post, not just the ones that
	// survive truncation.
	companies := companySet(posts)

	if len(posts) > a.limit {
		posts = posts[:a.limit]
	}
	if posts == nil {
		posts = []feeds.Post{}
	}
	if errs == nil {
		errs = []string{}
	}
	return feeds.Result{Posts: posts, Companies: companies, Errors: errs}
}

// companySet returns the sorted distinct company names among posts.
func companySet(posts []feeds.Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		set[p.Company] = struct{}{}
	}
	companies := make([]string, 0, len(set))
	for c := range set {
		companies = append(companies, c)
	}
	sort.Strings(companies)
	return companies
}
