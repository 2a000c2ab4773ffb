package domain

import (
	"sort"
	"strings"
)

// Issue is one ticket from the issue tracker, scoped to a project.
type Issue struct {
	Subject string // Ticket subject line
	Project string // Owning project name
	URL     string // Link to the ticket on the tracker
	ID      int    // Numeric ticket identifier
}

// ProjectGroups organizes issues by project name. Issues within a group
// keep their fetch order; group keys enumerate in sorted order.
type ProjectGroups struct {
	byProject map[string][]Issue
	names     []string
}

// GroupByProject groups the issues by project name.
func GroupByProject(issues []Issue) *ProjectGroups {
	g := &ProjectGroups{byProject: make(map[string][]Issue)}
	for _, issue := range issues {
		if _, ok := g.byProject[issue.Project]; !ok {
			g.names = append(g.names, issue.Project)
		}
		g.byProject[issue.Project] = append(g.byProject[issue.Project], issue)
	}
	sort.Strings(g.names)
	return g
}

// Names returns the distinct project names, sorted ascending.
func (g *ProjectGroups) Names() []string {
	return g.names
}

// Issues returns the issues of a project in fetch order.
func (g *ProjectGroups) Issues(project string) []Issue {
	return g.byProject[project]
}

// Len returns the number of distinct projects.
func (g *ProjectGroups) Len() int {
	return len(g.names)
}

// NaturalJoin joins project names for prose: all but the last
// comma-separated, with ", and " before the final name. A single name is
// returned bare; an empty list yields "".
func NaturalJoin(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}
