// Package filter implements the in-memory search, status filtering and
// ordering of the user directory. Everything here is a pure function of
// its inputs: no mutation, deterministic output.
package filter

import (
	"sort"
	"strconv"
	"strings"

	"drivehub-admin-backend/internal/features/directory/models"
)

// Apply returns the subset of records matching the free-text query and
// status filter, ordered by the directory sort rule for the given role
// tab. Empty query and status pass everything through.
func Apply(records []models.UserRecord, query, status, role string) []models.UserRecord {
	out := make([]models.UserRecord, 0, len(records))
	for _, r := range records {
		if status != "" && r.Status != status {
			continue
		}
		if query != "" && !matches(r, query) {
			continue
		}
		out = append(out, r)
	}

	sortRecords(out, role)
	return out
}

// matches implements the directory search rules: exact ID (with an
// optional leading "#"), ID substring, case-insensitive name or email
// substring, normalized phone substring, and ID-number substring.
func matches(r models.UserRecord, query string) bool {
	idQuery := strings.TrimPrefix(query, "#")
	idText := strconv.FormatInt(r.ID, 10)

	if idText == idQuery {
		return true
	}
	if strings.Contains(idText, query) {
		return true
	}

	lowered := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.FullName), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Email), lowered) {
		return true
	}

	if normQuery := NormalizePhone(query); normQuery != "" &&
		strings.Contains(NormalizePhone(r.Phone), normQuery) {
		return true
	}

	if r.IDNumber != "" && strings.Contains(r.IDNumber, query) {
		return true
	}

	return false
}

// NormalizePhone strips spaces and dashes and rewrites the South African
// "+27" country prefix to its local "0" form, so "+27 82 123-4567" and
// "0821234567" compare equal.
func NormalizePhone(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	if strings.HasPrefix(s, "+27") {
		s = "0" + s[len("+27"):]
	}
	return s
}

// sortRecords orders records by case-insensitive full name. On the admin
// tab the original admin is forced first regardless of name.
func sortRecords(records []models.UserRecord, role string) {
	originalID, hasOriginal := OriginalAdminID(records)
	pinOriginal := role == models.RoleAdmin && hasOriginal

	sort.SliceStable(records, func(i, j int) bool {
		if pinOriginal {
			if records[i].ID == originalID {
				return records[j].ID != originalID
			}
			if records[j].ID == originalID {
				return false
			}
		}
		return strings.ToLower(records[i].FullName) < strings.ToLower(records[j].FullName)
	})
}

// OriginalAdminID returns the ID of the bootstrap admin account: the
// minimum numeric ID among all admin records. It is recomputed from the
// current record set every time rather than cached, so it can never go
// stale after the admin list changes.
func OriginalAdminID(records []models.UserRecord) (int64, bool) {
	var minID int64
	found := false
	for _, r := range records {
		if r.Role != models.RoleAdmin {
			continue
		}
		if !found || r.ID < minID {
			minID = r.ID
			found = true
		}
	}
	return minID, found
}
