package identifier_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/identifier"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]{1,50}$`)

// memNamespace is an in-memory namespace backed by a set of taken values.
type memNamespace map[string]bool

func (ns memNamespace) Exists(_ context.Context, candidate string) (bool, error) {
	return ns[candidate], nil
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Grace Community Church", "grace-community-church"},
		{"FIRST BAPTIST", "first-baptist"},
		{"St. Mary's", "st-mary-s"},
		{"  spaced  out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"Ünïcode Naïve Café", "n-code-na-ve-caf"},
		{"trailing!!!", "trailing"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, identifier.Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	got := identifier.Slugify(long)
	assert.LessOrEqual(t, len(got), identifier.SlugMaxLen)
	assert.False(t, strings.HasSuffix(got, "-"), "truncation must not leave a trailing hyphen")
}

func TestSlugMatchesPattern(t *testing.T) {
	seeds := []string{
		"Grace Community Church",
		"!!!",
		"a",
		strings.Repeat("Very Long Church Name ", 10),
		"Église de la Paix",
	}

	for _, seed := range seeds {
		slug, err := identifier.Slug(context.Background(), seed, memNamespace{}, nil)
		require.NoError(t, err)
		assert.Regexp(t, slugPattern, slug, "seed %q", seed)
	}
}

func TestSlugEmptySeedFallsBack(t *testing.T) {
	slug, err := identifier.Slug(context.Background(), "!!!", memNamespace{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "untitled", slug)
}

func TestSlugSuffixesDeterministically(t *testing.T) {
	ns := memNamespace{"grace": true, "grace-1": true}

	slug, err := identifier.Slug(context.Background(), "Grace", ns, nil)
	require.NoError(t, err)
	assert.Equal(t, "grace-2", slug)
}

func TestSlugSuffixDoesNotAccumulate(t *testing.T) {
	// The occupied base already carries a numeric-looking tail; the next
	// allocation must re-derive from the base, not stack suffixes.
	ns := memNamespace{"grace-1": true}

	slug, err := identifier.Slug(context.Background(), "Grace 1", ns, nil)
	require.NoError(t, err)
	assert.Equal(t, "grace-1-1", slug)
}

func TestSlugSuffixRespectsMaxLen(t *testing.T) {
	base := strings.Repeat("a", identifier.SlugMaxLen)
	ns := memNamespace{base: true}

	slug, err := identifier.Slug(context.Background(), base, ns, nil)
	require.NoError(t, err)
	assert.Regexp(t, slugPattern, slug)
	assert.True(t, strings.HasSuffix(slug, "-1"))
}

func TestSlugRetriesOnInsertRace(t *testing.T) {
	// The namespace says the base is free, but the insert loses the race.
	// The allocator must come back around with the next suffix.
	var inserted []string
	insert := func(_ context.Context, candidate string) error {
		inserted = append(inserted, candidate)
		if len(inserted) == 1 {
			return gorm.ErrDuplicatedKey
		}
		return nil
	}

	slug, err := identifier.Slug(context.Background(), "Grace", memNamespace{}, insert)
	require.NoError(t, err)
	assert.Equal(t, "grace-1", slug)
	assert.Equal(t, []string{"grace", "grace-1"}, inserted)
}

func TestSlugGivesUpWhenEveryCandidateFailsInsert(t *testing.T) {
	// A unique violation that persists across fresh candidates is some other
	// constraint failing inside the insert, not a slug collision. The
	// allocator must stop instead of re-suffixing until the context dies.
	attempts := 0
	insert := func(_ context.Context, _ string) error {
		attempts++
		return gorm.ErrDuplicatedKey
	}

	_, err := identifier.Slug(context.Background(), "Grace", memNamespace{}, insert)
	assert.ErrorIs(t, err, domain.ErrAllocationExhausted)
	assert.Equal(t, 100, attempts)
}

func TestSlugSurfacesInsertErrors(t *testing.T) {
	boom := errors.New("connection reset")
	insert := func(_ context.Context, _ string) error { return boom }

	_, err := identifier.Slug(context.Background(), "Grace", memNamespace{}, insert)
	assert.ErrorIs(t, err, boom)
}

func TestShortCodeShape(t *testing.T) {
	code, err := identifier.ShortCode(context.Background(), 6, memNamespace{}, nil)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	for _, r := range code {
		assert.NotContains(t, "IO01", string(r), "code %q contains an ambiguous character", code)
		assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '2' && r <= '9'), "code %q outside alphabet", code)
	}
}

func TestShortCodeExhaustion(t *testing.T) {
	// A namespace that reports every candidate taken starves the allocator.
	full := identifier.NamespaceFunc(func(_ context.Context, _ string) (bool, error) {
		return true, nil
	})

	_, err := identifier.ShortCode(context.Background(), 6, full, nil)
	assert.ErrorIs(t, err, domain.ErrAllocationExhausted)
}

func TestShortCodeRetriesOnInsertRace(t *testing.T) {
	calls := 0
	insert := func(_ context.Context, _ string) error {
		calls++
		if calls == 1 {
			return gorm.ErrDuplicatedKey
		}
		return nil
	}

	code, err := identifier.ShortCode(context.Background(), 6, memNamespace{}, insert)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, 2, calls)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, identifier.IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, identifier.IsUniqueViolation(fmt.Errorf("creating: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, identifier.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, identifier.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, identifier.IsUniqueViolation(errors.New("unique snowflake")))
	assert.False(t, identifier.IsUniqueViolation(nil))
}
