package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/core/notifications"
	"konsulin-portal/internal/app/services/core/status"
	"konsulin-portal/internal/pkg/dto/responses"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	viewSessions      = "sessions"
	viewPsychologists = "psychologists"
	viewNotifications = "notifications"
)

const helpText = `commands:
  sessions | psychologists | notifications   switch view
  next | prev | page N                       paginate
  filter key=value | clear                   change filters of the list view
  read-all | count                           notification actions
  quit`

type pager interface {
	Mount(ctx context.Context) error
	Next(ctx context.Context) (bool, error)
	Prev(ctx context.Context) (bool, error)
	OnPageChange(ctx context.Context, n int) (bool, error)
	SetFilters(ctx context.Context, filter listing.Filter) error
	Filter() listing.Filter
	State() listing.State
	Pagination() listing.PaginationState
}

type listView struct {
	pager
	render func() []string
}

// Console is a line driven portal client. List failures reach the user
// through the error handler the listers were built with, so commands only
// print what succeeded.
type Console struct {
	out    *logrus.Logger
	feed   *notifications.Feed
	views  map[string]listView
	active string
}

func New(
	sessions *listing.Lister[responses.Session],
	psychologists *listing.Lister[responses.PsychologistSummary],
	feed *notifications.Feed,
	out *logrus.Logger,
) *Console {
	return &Console{
		out:  out,
		feed: feed,
		views: map[string]listView{
			viewSessions: {
				pager: sessions,
				render: func() []string {
					rows := status.SessionRows(sessions.Items())
					lines := make([]string, 0, len(rows))
					for _, row := range rows {
						lines = append(lines, fmt.Sprintf("%s  %s  %s  [%s]",
							row.ID, row.StartTime.Format("2006-01-02 15:04"), row.PsychologistName, row.Badge.Label))
					}
					return lines
				},
			},
			viewPsychologists: {
				pager: psychologists,
				render: func() []string {
					items := psychologists.Items()
					lines := make([]string, 0, len(items))
					for _, p := range items {
						lines = append(lines, fmt.Sprintf("%s  %s  %s  rating %.1f",
							p.ID, p.Fullname, strings.Join(p.Specializations, ", "), p.Rating))
					}
					return lines
				},
			},
		},
	}
}

// Run reads commands from in until quit or EOF.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	c.out.Info(helpText)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := c.Execute(ctx, line); quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs one command and reports whether the console should exit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "quit", "exit":
		return true
	case "help":
		c.out.Info(helpText)
	case viewSessions, viewPsychologists:
		c.active = command
		view := c.views[command]
		if view.State() == listing.StateIdle {
			if err := view.Mount(ctx); err != nil {
				return false
			}
		}
		c.printList(view)
	case viewNotifications:
		c.active = command
		if err := c.feed.Load(ctx, 1); err != nil {
			return false
		}
		c.printFeed()
	case "next":
		c.paginate(ctx, func(view listView) (bool, error) { return view.Next(ctx) })
	case "prev":
		c.paginate(ctx, func(view listView) (bool, error) { return view.Prev(ctx) })
	case "page":
		if len(args) != 1 {
			c.out.Warn("usage: page N")
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			c.out.Warnf("not a page number: %q", args[0])
			return false
		}
		c.paginate(ctx, func(view listView) (bool, error) { return view.OnPageChange(ctx, n) })
	case "filter":
		view, ok := c.listView()
		if !ok {
			return false
		}
		filter := view.Filter()
		for _, arg := range args {
			key, value, found := strings.Cut(arg, "=")
			if !found || key == "" {
				c.out.Warnf("expected key=value, got %q", arg)
				return false
			}
			filter = filter.With(key, value)
		}
		if err := view.SetFilters(ctx, filter); err == nil {
			c.printList(view)
		}
	case "clear":
		view, ok := c.listView()
		if !ok {
			return false
		}
		if err := view.SetFilters(ctx, nil); err == nil {
			c.printList(view)
		}
	case "read-all":
		if _, err := c.feed.MarkAllRead(ctx); err == nil {
			c.out.Infof("all notifications marked as read, unread %d", c.feed.UnreadCount())
		}
	case "count":
		if count, err := c.feed.RefreshUnreadCount(ctx); err == nil {
			c.out.Infof("unread %d", count)
		}
	default:
		c.out.Warnf("unknown command %q, type help", command)
	}
	return false
}

func (c *Console) listView() (listView, bool) {
	view, ok := c.views[c.active]
	if !ok {
		c.out.Warn("open sessions or psychologists first")
	}
	return view, ok
}

func (c *Console) paginate(ctx context.Context, move func(listView) (bool, error)) {
	if c.active == viewNotifications {
		fetched, err := c.feed.LoadMore(ctx)
		switch {
		case err != nil:
		case !fetched:
			c.out.Info("no more notifications")
		default:
			c.printFeed()
		}
		return
	}

	view, ok := c.listView()
	if !ok {
		return
	}
	fetched, err := move(view)
	if err != nil {
		return
	}
	if !fetched {
		c.out.Info("no such page")
		return
	}
	c.printList(view)
}

func (c *Console) printList(view listView) {
	pagination := view.Pagination()
	lines := view.render()
	if len(lines) == 0 {
		c.out.Info("no items found")
	}
	for _, line := range lines {
		c.out.Info(line)
	}
	c.out.Infof("page %d of %d (%d items) filter %v", pagination.CurrentPage, pagination.TotalPages, pagination.TotalItems, view.Filter().Values().Encode())
}

func (c *Console) printFeed() {
	for _, n := range c.feed.Items() {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		c.out.Infof("%s %s  %s  %s", marker, n.CreatedAt.Format("2006-01-02 15:04"), n.Title, n.Message)
	}
	pagination := c.feed.Pagination()
	c.out.Infof("loaded %d of %d, unread %d", len(c.feed.Items()), pagination.TotalItems, c.feed.UnreadCount())
}
