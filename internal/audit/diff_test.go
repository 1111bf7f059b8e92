package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_Creation(t *testing.T) {
	after := map[string]any{"name": "Acme", "password": "secret123", "active": true}

	changes := Diff(nil, after)

	require.Len(t, changes, 3)
	assert.Equal(t, Change{Old: nil, New: "Acme"}, changes["name"])
	assert.Equal(t, Change{Old: nil, New: Redacted}, changes["password"])
	assert.Equal(t, Change{Old: nil, New: true}, changes["active"])
}

func TestDiff_Deletion(t *testing.T) {
	before := map[string]any{"name": "Acme", "active": false}

	changes := Diff(before, nil)

	require.Len(t, changes, 2)
	assert.Equal(t, Change{Old: "Acme", New: nil}, changes["name"])
	assert.Equal(t, Change{Old: false, New: nil}, changes["active"])
}

func TestDiff_UnchangedKeysOmitted(t *testing.T) {
	before := map[string]any{"name": "Acme", "city": "Pune"}
	after := map[string]any{"name": "Acme Utd", "city": "Pune"}

	changes := Diff(before, after)

	require.Len(t, changes, 1)
	assert.Equal(t, Change{Old: "Acme", New: "Acme Utd"}, changes["name"])
}

func TestDiff_IdenticalSnapshotsAreEmpty(t *testing.T) {
	snap := map[string]any{"name": "Acme", "active": true, "founded_year": 1987.0}
	assert.Empty(t, Diff(snap, snap))
}

func TestDiff_NestedValuesExcluded(t *testing.T) {
	before := map[string]any{
		"name": "Acme",
		"club": map[string]any{"id": "c1", "name": "inner"},
	}
	after := map[string]any{
		"name":    "Acme Utd",
		"club":    map[string]any{"id": "c2", "name": "other"},
		"players": []any{"p1", "p2"},
	}

	changes := Diff(before, after)

	require.Len(t, changes, 1)
	assert.Contains(t, changes, "name")
	assert.NotContains(t, changes, "club")
	assert.NotContains(t, changes, "players")
}

func TestDiff_NestedOnOneSideExcludesKey(t *testing.T) {
	before := map[string]any{"meta": "plain"}
	after := map[string]any{"meta": map[string]any{"k": "v"}}

	assert.Empty(t, Diff(before, after))
}

func TestDiff_TimestampNormalization(t *testing.T) {
	utc := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	offset := utc.In(time.FixedZone("IST", 5*3600+1800))

	// Same instant in different zones is not a change.
	assert.Empty(t, Diff(
		map[string]any{"joined_at": utc},
		map[string]any{"joined_at": offset},
	))

	// A time.Time on one side and its RFC 3339 string on the other compare equal.
	assert.Empty(t, Diff(
		map[string]any{"joined_at": utc},
		map[string]any{"joined_at": "2026-03-01T10:00:00Z"},
	))

	// An actual change is reported in canonical form.
	changes := Diff(
		map[string]any{"joined_at": utc},
		map[string]any{"joined_at": utc.Add(time.Hour)},
	)
	require.Len(t, changes, 1)
	assert.Equal(t, "2026-03-01T10:00:00Z", changes["joined_at"].Old)
	assert.Equal(t, "2026-03-01T11:00:00Z", changes["joined_at"].New)
}

func TestDiff_UpdatedAtNeverDiffed(t *testing.T) {
	utc := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// updated_at is bumped on every write; it alone must not turn a
	// no-op update into an audited change.
	assert.Empty(t, Diff(
		map[string]any{"name": "Acme", "updated_at": utc},
		map[string]any{"name": "Acme", "updated_at": utc.Add(time.Minute)},
	))
}

func TestDiff_NumericKindsCompareEqual(t *testing.T) {
	// A snapshot from JSON carries float64, an in-memory one int.
	assert.Empty(t, Diff(
		map[string]any{"founded_year": 1987},
		map[string]any{"founded_year": 1987.0},
	))
}

func TestDiff_AadhaarMaskedBothSides(t *testing.T) {
	changes := Diff(
		map[string]any{"aadharNumber": "123456789012"},
		map[string]any{"aadharNumber": "123456789099"},
	)

	require.Len(t, changes, 1)
	assert.Equal(t, "XXXX-XXXX-9012", changes["aadharNumber"].Old)
	assert.Equal(t, "XXXX-XXXX-9099", changes["aadharNumber"].New)
}

func TestSnapshot_FlattensViaJSONTags(t *testing.T) {
	type inner struct {
		ID string `json:"id"`
	}
	type entity struct {
		Name   string  `json:"name"`
		Hidden string  `json:"-"`
		Rel    inner   `json:"rel"`
		Email  *string `json:"email,omitempty"`
	}

	snap, err := Snapshot(&entity{Name: "Acme", Hidden: "x", Rel: inner{ID: "1"}})
	require.NoError(t, err)

	assert.Equal(t, "Acme", snap["name"])
	assert.NotContains(t, snap, "Hidden")
	assert.NotContains(t, snap, "email") // omitempty
	// Relation survives the snapshot but is structural, so Diff drops it.
	assert.Contains(t, snap, "rel")
	assert.Empty(t, Diff(nil, map[string]any{"rel": snap["rel"]}))
}

func TestSnapshot_Nil(t *testing.T) {
	snap, err := Snapshot(nil)
	require.NoError(t, err)
	assert.Nil(t, snap)
}
