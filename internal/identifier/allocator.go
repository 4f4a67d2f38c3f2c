// internal/identifier/allocator.go
package identifier

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// SlugMaxLen bounds derived slugs, suffix included.
	SlugMaxLen = 50

	// codeAlphabet omits visually ambiguous characters (I, O, 0, 1) since
	// short codes are read aloud and typed at child pickup.
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// maxCodeAttempts bounds random draws before giving up.
	maxCodeAttempts = 10

	// maxSlugAttempts bounds suffix retries. The candidate changes every
	// iteration, so reaching the bound means the insert keeps tripping a
	// unique constraint that is not the slug's.
	maxSlugAttempts = 100
)

// Namespace answers whether a candidate identifier is already taken among
// currently-live rows. Deleted rows do not reserve their identifiers.
type Namespace interface {
	Exists(ctx context.Context, candidate string) (bool, error)
}

// NamespaceFunc adapts a function to the Namespace interface.
type NamespaceFunc func(ctx context.Context, candidate string) (bool, error)

func (f NamespaceFunc) Exists(ctx context.Context, candidate string) (bool, error) {
	return f(ctx, candidate)
}

// InsertFunc attempts the row insert that claims the candidate. The existence
// check narrows the window; the unique constraint on the table closes it —
// a unique-violation from the insert sends the allocator back around the loop
// instead of surfacing a raw database error.
type InsertFunc func(ctx context.Context, candidate string) error

// Slugify derives a URL-safe slug from seed: lower-cased, non-alphanumeric
// runs collapsed to single hyphens, trimmed, truncated to SlugMaxLen.
func Slugify(seed string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(seed) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if len(s) > SlugMaxLen {
		s = strings.TrimRight(s[:SlugMaxLen], "-")
	}
	return s
}

// Slug allocates a unique slug derived from seed within the namespace and
// claims it with insert. On collision it appends -1, -2, ... re-deriving the
// candidate from the base each iteration, so suffixes never accumulate. The
// loop is bounded: a unique violation that persists across fresh candidates
// cannot be a slug collision, and callers with multi-row inserts must
// translate their other constraints before the allocator sees them.
func Slug(ctx context.Context, seed string, ns Namespace, insert InsertFunc) (string, error) {
	base := Slugify(seed)
	if base == "" {
		base = "untitled"
	}

	for n := 0; n < maxSlugAttempts; n++ {
		candidate := base
		if n > 0 {
			suffix := fmt.Sprintf("-%d", n)
			trimmed := base
			if len(trimmed)+len(suffix) > SlugMaxLen {
				trimmed = strings.TrimRight(trimmed[:SlugMaxLen-len(suffix)], "-")
			}
			candidate = trimmed + suffix
		}

		taken, err := ns.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", candidate, err)
		}
		if taken {
			continue
		}

		if insert == nil {
			return candidate, nil
		}
		err = insert(ctx, candidate)
		if err == nil {
			return candidate, nil
		}
		if IsUniqueViolation(err) {
			// Lost the race between check and insert; re-suffix and go again.
			continue
		}
		return "", err
	}
	return "", domain.ErrAllocationExhausted
}

// ShortCode allocates a fixed-length code from the restricted alphabet and
// claims it with insert. Retries with a fresh draw on collision, up to
// maxCodeAttempts, then fails with domain.ErrAllocationExhausted.
func ShortCode(ctx context.Context, length int, ns Namespace, insert InsertFunc) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		candidate, err := randomCode(length)
		if err != nil {
			return "", err
		}

		taken, err := ns.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking code: %w", err)
		}
		if taken {
			continue
		}

		if insert == nil {
			return candidate, nil
		}
		err = insert(ctx, candidate)
		if err == nil {
			return candidate, nil
		}
		if IsUniqueViolation(err) {
			continue
		}
		return "", err
	}
	return "", domain.ErrAllocationExhausted
}

// IsUniqueViolation reports whether err is a unique-constraint violation,
// either as translated by gorm or as the raw postgres SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func randomCode(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("drawing random code: %w", err)
		}
		b[i] = codeAlphabet[idx.Int64()]
	}
	return string(b), nil
}
