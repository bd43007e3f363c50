package vault

import (
	"fmt"
	"sort"
)

// Issue is one problem found by Check, attached to the file that carries it.
type Issue struct {
	ID  string
	Msg string
}

func (i Issue) String() string {
	if i.ID == "" {
		return i.Msg
	}
	return fmt.Sprintf("%s: %s", i.ID, i.Msg)
}

// Check scans the whole vault and reports every structural problem: files
// that fail to parse, dangling prerequisites, self-references, and malformed
// IDs. It never fails on content issues; the error covers I/O only.
func (v *Vault) Check() ([]Issue, error) {
	ids, err := v.IDs()
	if err != nil {
		return nil, err
	}

	var issues []Issue
	parsed := make(map[string]*Tutorial, len(ids))
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	for _, id := range ids {
		if _, _, err := SplitID(id); err != nil {
			issues = append(issues, Issue{ID: id, Msg: "filename is not DD-MM-YYYY-slug.md"})
		}
		t, err := v.Get(id)
		if err != nil {
			issues = append(issues, Issue{ID: id, Msg: err.Error()})
			continue
		}
		parsed[id] = t
	}

	// Referential integrity over the files that did parse.
	for _, id := range ids {
		t, ok := parsed[id]
		if !ok {
			continue
		}
		for _, prereq := range t.Prerequisites {
			switch {
			case prereq == id:
				issues = append(issues, Issue{ID: id, Msg: "lists itself as a prerequisite"})
			case !idSet[prereq]:
				issues = append(issues, Issue{ID: id, Msg: fmt.Sprintf("references nonexistent prerequisite %q", prereq)})
			}
		}
		if !t.LastUpdated.IsZero() && t.LastUpdated.Before(t.Created.Time) {
			issues = append(issues, Issue{ID: id, Msg: "last_updated predates created"})
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].ID < issues[j].ID })
	return issues, nil
}
