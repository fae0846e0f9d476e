package utils

import (
	"strings"

	"github.com/JavCast03/proyectoGSASD/models"
)

// CountTasks computes the aggregate totals shown in the list view. Counts
// are always taken over the full set, before any filter or search is
// applied.
func CountTasks(tasks []models.Task) (total, pending, completed int) {
	total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return total, pending, completed
}

// FilterTasks applies the status filter and the case-insensitive substring
// search, composed with AND. Unknown filter values behave as "all"; an
// empty query matches everything.
func FilterTasks(tasks []models.Task, filter, query string) []models.Task {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []models.Task{}
	for _, t := range tasks {
		switch filter {
		case "pending":
			if t.Completed {
				continue
			}
		case "completed":
			if !t.Completed {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Text), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}
